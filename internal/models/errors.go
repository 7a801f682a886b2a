package models

import (
	"errors"
	"fmt"
)

// Domain errors shared by the store, the service and every surface
var (
	// ErrNotFound indicates no state list holds the requested identifier
	ErrNotFound = errors.New("project not found")

	// ErrInvalidState indicates a state outside {todo, doing, done}
	ErrInvalidState = errors.New("invalid state")

	// ErrIndexOutOfRange indicates a list index past the end of a state list
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDescriptionTooLong indicates a description over DescriptionLimit characters
	ErrDescriptionTooLong = fmt.Errorf("description cannot exceed %d characters", DescriptionLimit)

	// ErrDeadlineInPast indicates a deadline before today
	ErrDeadlineInPast = errors.New("deadline cannot be in the past")

	// ErrInvalidDeadline indicates a deadline that is not a YYYY-MM-DD date
	ErrInvalidDeadline = errors.New("deadline must be a date in YYYY-MM-DD format")
)

// ValidationError ties an editor validation failure to the offending field
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

// Unwrap exposes the sentinel for errors.Is
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is an editor validation failure
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
