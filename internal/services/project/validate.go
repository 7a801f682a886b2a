package project

import (
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ValidateEditor applies the detail editor rules the board store does not enforce.
// The deadline check compares against the start of today, so any date from today on is accepted.
func ValidateEditor(description string, deadline, now time.Time) error {
	if utf8.RuneCountInString(description) > models.DescriptionLimit {
		return &models.ValidationError{Field: "description", Err: models.ErrDescriptionTooLong}
	}
	if deadline.Before(models.StartOfDay(now)) {
		return &models.ValidationError{Field: "deadline", Err: models.ErrDeadlineInPast}
	}
	return nil
}
