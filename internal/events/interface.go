package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// This interface allows for loose coupling and easier testing by depending
// on behavior rather than concrete implementation.
type EventPublisher interface {
	// SendEvent delivers an event to every listener
	SendEvent(event Event) error

	// Listen returns a channel of events that closes when ctx is done
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
