package events

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"
)

// Broker fans events out to in-process listeners.
// Delivery never blocks the publisher: a listener whose queue is full misses the event.
type Broker struct {
	mu        sync.Mutex
	listeners map[int]chan Event
	nextID    int
	sequence  int64
	queueSize int
	closed    bool
	now       func() time.Time

	done     chan struct{}
	watchers sync.WaitGroup
}

// NewBroker creates a broker. Queue size per listener defaults to 100 and can be
// overridden with PM_EVENT_QUEUE_SIZE.
func NewBroker() *Broker {
	queueSize := 100
	if envVal := os.Getenv("PM_EVENT_QUEUE_SIZE"); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			queueSize = parsed
		}
	}

	return &Broker{
		listeners: make(map[int]chan Event),
		queueSize: queueSize,
		now:       time.Now,
		done:      make(chan struct{}),
	}
}

// SendEvent stamps the event with a sequence number and timestamp and queues it for every listener.
// Returns ErrDropped if any listener was too slow to receive it.
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}

	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	var dropped bool
	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			dropped = true
			slog.Warn("event queue full, dropping event", "listener", id, "type", event.Type)
		}
	}

	if dropped {
		return ErrDropped
	}
	return nil
}

// Listen registers a new listener. The channel is closed when ctx ends or the broker closes.
func (b *Broker) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrClosed
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, b.queueSize)
	b.listeners[id] = ch
	b.watchers.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.watchers.Done()
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return ch, nil
}

// Close closes every listener channel and waits for their context watchers to exit.
// Further sends return ErrClosed.
func (b *Broker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	close(b.done)
	for id, ch := range b.listeners {
		close(ch)
		delete(b.listeners, id)
	}
	b.mu.Unlock()

	b.watchers.Wait()
	return nil
}

func (b *Broker) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		close(ch)
		delete(b.listeners, id)
	}
}
