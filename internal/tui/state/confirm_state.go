package state

import (
	"charm.land/huh/v2"
	"github.com/google/uuid"
)

// DeleteConfirmState holds the open delete confirmation.
// Confirmed is bound to the form's confirm field.
type DeleteConfirmState struct {
	Form      *huh.Form
	ProjectID uuid.UUID
	Confirmed bool
}

// NewDeleteConfirmState creates an empty DeleteConfirmState
func NewDeleteConfirmState() *DeleteConfirmState {
	return &DeleteConfirmState{}
}

// Open starts confirming the delete of id; build builds the form around the Confirmed flag
func (s *DeleteConfirmState) Open(id uuid.UUID, build func(confirm *bool) *huh.Form) *huh.Form {
	s.ProjectID = id
	s.Confirmed = false
	s.Form = build(&s.Confirmed)
	return s.Form
}

// Close discards the dialog
func (s *DeleteConfirmState) Close() {
	s.Form = nil
	s.ProjectID = uuid.Nil
	s.Confirmed = false
}
