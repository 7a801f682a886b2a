package state

import (
	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/tui/forms"
)

// Editor field keys
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDeadline    = "deadline"
)

// FormState tracks the open detail editor.
// Original is nil while creating a new project.
type FormState struct {
	Editor   *forms.Form
	Original *models.Project
}

// NewFormState creates an empty FormState
func NewFormState() *FormState {
	return &FormState{}
}

// Open starts editing with form; original is nil for a new project
func (s *FormState) Open(form *forms.Form, original *models.Project) {
	s.Editor = form
	s.Original = original
}

// Close discards the editor
func (s *FormState) Close() {
	s.Editor = nil
	s.Original = nil
}

// IsNew reports whether the editor creates a project
func (s *FormState) IsNew() bool {
	return s.Original == nil
}

// EditingID returns the id being edited, nil for a new project
func (s *FormState) EditingID() *uuid.UUID {
	if s.Original == nil {
		return nil
	}
	id := s.Original.ID
	return &id
}

// Value returns the text of the field with key, or "" with no editor open
func (s *FormState) Value(key string) string {
	if s.Editor == nil {
		return ""
	}
	if field := s.Editor.Get(key); field != nil {
		return field.Value()
	}
	return ""
}
