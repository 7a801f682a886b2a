package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// EDITOR LIMITS
// ============================================================================

// DescriptionLimit is the maximum description length in characters (runes)
const DescriptionLimit = 1000

// DeadlineLayout is the date format used for deadlines in every surface
const DeadlineLayout = "2006-01-02"

// ============================================================================
// DISPLAY
// ============================================================================

// MaxDisplayCount caps the column header counters; larger values render as "99+"
const MaxDisplayCount = 99

// Placeholders shown on cards with empty fields
const (
	UntitledPlaceholder      = "Untitled"
	NoDescriptionPlaceholder = "No description"
)

// DeleteActionLabel is the action menu text for removing a project
const DeleteActionLabel = "Delete"

// FormatCount renders a column counter, capping at MaxDisplayCount
func FormatCount(n int) string {
	if n > MaxDisplayCount {
		return strconv.Itoa(MaxDisplayCount) + "+"
	}
	return strconv.Itoa(n)
}

// ParseDeadline reads a YYYY-MM-DD date in loc and returns the last instant of that day,
// so a project due today only becomes overdue once the day is over.
func ParseDeadline(value string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DeadlineLayout, strings.TrimSpace(value), loc)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "deadline", Err: fmt.Errorf("%w: %q", ErrInvalidDeadline, value)}
	}
	return EndOfDay(day), nil
}

// ParseDeadlineOrToday is ParseDeadline with an empty value meaning the end of now's day.
// The date is read in now's location.
func ParseDeadlineOrToday(value string, now time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return EndOfDay(now), nil
	}
	return ParseDeadline(value, now.Location())
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last representable instant of t's day in t's location
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
