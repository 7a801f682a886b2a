package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// NewFormatter reads the --json and --quiet flags every subcommand carries
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// Fail reports err through the formatter and returns it with the matching exit code.
// code is the error code used when err is not a known domain error.
func Fail(f *OutputFormatter, code string, err error) error {
	exit := ExitError
	suggestion := ""
	switch {
	case errors.Is(err, models.ErrNotFound):
		code, exit = "PROJECT_NOT_FOUND", ExitNotFound
		suggestion = "List project IDs with: pm project list"
	case errors.Is(err, models.ErrInvalidState):
		code, exit = "INVALID_STATE", ExitValidation
		suggestion = "Valid states: " + stateNames()
	case models.IsValidation(err):
		code, exit = "VALIDATION_ERROR", ExitValidation
	case errors.Is(err, errInvalidID):
		code, exit = "INVALID_ID", ExitUsage
	}

	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CommandError{Code: exit, Err: err}
}

var errInvalidID = errors.New("invalid project id")

// ParseProjectID parses a UUID given on the command line
func ParseProjectID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w %q", errInvalidID, value)
	}
	return id, nil
}

// ParseDeadlineFlag parses a YYYY-MM-DD deadline in the board clock's location.
// An empty value defaults to the end of today.
func ParseDeadlineFlag(value string, now time.Time) (time.Time, error) {
	return models.ParseDeadlineOrToday(value, now)
}

func stateNames() string {
	names := make([]string, 0, 3)
	for _, s := range models.States() {
		names = append(names, s.String())
	}
	return strings.Join(names, ", ")
}
