package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, malformed project IDs.
	ExitUsage = 2

	// ExitNotFound indicates a requested project was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Invalid JSON input, corrupted rows.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Description over the limit, deadline in the past,
	// unknown state names.
	ExitValidation = 5
)

// CommandError carries the exit code a failed command should terminate with.
// The message has already been reported to the user when it is returned.
type CommandError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error
func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitError
}

// IsReported reports whether err was already printed by an OutputFormatter
func IsReported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr)
}
