package server

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/thenoetrevino/projectmanager/internal/events"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// Command labels for pm_board_commands_total
const (
	commandCreate = "create"
	commandUpdate = "update"
	commandMove   = "move"
	commandRemove = "remove"
)

// Metrics exports board activity to Prometheus. It is fed by the event publisher,
// so commands from every surface sharing the publisher are counted.
type Metrics struct {
	registry *prometheus.Registry

	commands *prometheus.CounterVec
	projects *prometheus.GaugeVec

	eventsReceived atomic.Int64
	StartTime      time.Time
}

// NewMetrics creates a Metrics instance with its own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pm_board_commands_total",
				Help: "Total number of committed board commands",
			},
			[]string{"command"},
		),
		projects: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pm_board_projects",
				Help: "Number of projects currently in each state",
			},
			[]string{"state"},
		),
		StartTime: time.Now(),
	}
	m.registry.MustRegister(m.commands, m.projects)
	m.registry.MustRegister(collectors.NewGoCollector())

	// Pre-create every series so scrapes show zeros before the first command
	for _, command := range []string{commandCreate, commandUpdate, commandMove, commandRemove} {
		m.commands.WithLabelValues(command)
	}
	for _, state := range models.States() {
		m.projects.WithLabelValues(state.String())
	}
	return m
}

// Registry is the registry /metrics serves
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Record counts one event and refreshes the per-state gauges from count
func (m *Metrics) Record(event events.Event, count func(models.State) int) {
	m.eventsReceived.Add(1)

	if command := commandLabel(event); command != "" {
		m.commands.WithLabelValues(command).Inc()
	}
	m.SetCounts(count)
}

// SetCounts sets pm_board_projects for every state
func (m *Metrics) SetCounts(count func(models.State) int) {
	for _, state := range models.States() {
		m.projects.WithLabelValues(state.String()).Set(float64(count(state)))
	}
}

// Watch subscribes to publisher and records events in the background until ctx is done
// or the publisher closes. The subscription is active once Watch returns; the returned
// channel closes when recording stops.
func (m *Metrics) Watch(ctx context.Context, publisher events.EventPublisher, count func(models.State) int) (<-chan struct{}, error) {
	ch, err := publisher.Listen(ctx)
	if err != nil {
		return nil, err
	}

	m.SetCounts(count)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range ch {
			slog.Debug("board event", "type", event.Type, "project", event.ProjectID, "seq", event.SequenceID)
			m.Record(event, count)
		}
	}()
	return done, nil
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EventsReceived int64     `json:"events_received"`
	StartTime      time.Time `json:"start_time"`
	Uptime         string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsReceived: m.eventsReceived.Load(),
		StartTime:      m.StartTime,
		Uptime:         time.Since(m.StartTime).Round(time.Second).String(),
	}
}

func commandLabel(event events.Event) string {
	switch event.Type {
	case events.EventProjectSaved:
		if event.Created {
			return commandCreate
		}
		return commandUpdate
	case events.EventProjectMoved:
		return commandMove
	case events.EventProjectRemoved:
		return commandRemove
	default:
		return ""
	}
}
