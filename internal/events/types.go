package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventProjectSaved   EventType = "project_saved"
	EventProjectMoved   EventType = "project_moved"
	EventProjectRemoved EventType = "project_removed"
	EventBoardLoaded    EventType = "board_loaded"
)

// Event represents a committed board change
type Event struct {
	Type      EventType
	ProjectID uuid.UUID
	// From and To are the states involved. A save or remove sets both to the project's state.
	From       models.State
	To         models.State
	Created    bool      // set on EventProjectSaved when the project is new
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}
