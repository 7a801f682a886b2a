package events

import "errors"

var (
	// ErrClosed is returned when publishing to or listening on a closed broker
	ErrClosed = errors.New("event broker closed")

	// ErrDropped is returned when at least one listener's queue was full
	ErrDropped = errors.New("event dropped for slow listener")
)
