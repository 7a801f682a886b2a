package state

import (
	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// MenuAction is what picking a menu item does
type MenuAction int

const (
	ActionMove MenuAction = iota
	ActionDelete
)

// MenuItem is one row of the action menu
type MenuItem struct {
	Label  string
	Action MenuAction
	Target models.State // only meaningful for ActionMove
}

// ActionMenuState is the menu opened on a card: one "Move to X" per other state, then Delete.
type ActionMenuState struct {
	projectID uuid.UUID
	items     []MenuItem
	cursor    int
}

// NewActionMenuState creates a closed menu
func NewActionMenuState() *ActionMenuState {
	return &ActionMenuState{}
}

// Open builds the items for a project currently in from
func (s *ActionMenuState) Open(projectID uuid.UUID, from models.State) {
	s.projectID = projectID
	s.cursor = 0
	s.items = s.items[:0]
	for _, target := range from.Others() {
		s.items = append(s.items, MenuItem{Label: target.MoveLabel(), Action: ActionMove, Target: target})
	}
	s.items = append(s.items, MenuItem{Label: models.DeleteActionLabel, Action: ActionDelete})
}

// Close clears the menu
func (s *ActionMenuState) Close() {
	s.projectID = uuid.Nil
	s.items = nil
	s.cursor = 0
}

// ProjectID is the project the menu acts on
func (s *ActionMenuState) ProjectID() uuid.UUID {
	return s.projectID
}

// Items returns the menu rows in display order
func (s *ActionMenuState) Items() []MenuItem {
	return s.items
}

// Cursor returns the highlighted row
func (s *ActionMenuState) Cursor() int {
	return s.cursor
}

// Next moves the cursor down, wrapping around
func (s *ActionMenuState) Next() {
	if len(s.items) > 0 {
		s.cursor = (s.cursor + 1) % len(s.items)
	}
}

// Prev moves the cursor up, wrapping around
func (s *ActionMenuState) Prev() {
	if len(s.items) > 0 {
		s.cursor = (s.cursor - 1 + len(s.items)) % len(s.items)
	}
}

// Selected returns the highlighted item
func (s *ActionMenuState) Selected() (MenuItem, bool) {
	if s.cursor < 0 || s.cursor >= len(s.items) {
		return MenuItem{}, false
	}
	return s.items[s.cursor], true
}
