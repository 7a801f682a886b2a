// Package state holds the TUI's mutable state, split by concern.
package state

import "github.com/thenoetrevino/projectmanager/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default navigation mode
	EditorMode                    // Detail editor open (new or existing project)
	ActionMenuMode                // Move / delete menu for the selected card
	DeleteConfirmMode             // Confirming project deletion
	HelpMode                      // Displaying help screen
)

// String names the mode for logs
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case EditorMode:
		return "editor"
	case ActionMenuMode:
		return "action_menu"
	case DeleteConfirmMode:
		return "delete_confirm"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/project selection), scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	selectedColumn  int
	selectedProject int

	width  int
	height int

	mode Mode

	// scrollOffsets holds the index of the first visible card per state
	scrollOffsets map[models.State]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:          NormalMode,
		scrollOffsets: make(map[models.State]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn updates the selected column index.
func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

// SelectedState returns the state of the selected column.
func (s *UIState) SelectedState() models.State {
	states := models.States()
	if s.selectedColumn < 0 || s.selectedColumn >= len(states) {
		return models.StateToDo
	}
	return states[s.selectedColumn]
}

// SelectedProject returns the index of the selected card within its column.
func (s *UIState) SelectedProject() int {
	return s.selectedProject
}

// SetSelectedProject updates the selected card index.
func (s *UIState) SetSelectedProject(index int) {
	s.selectedProject = index
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ContentHeight is the height available to columns, leaving a row for the status bar.
func (s *UIState) ContentHeight() int {
	return max(s.height-1, 0)
}

// ScrollOffset returns the first visible card index for state.
func (s *UIState) ScrollOffset(state models.State) int {
	return s.scrollOffsets[state]
}

// ClampSelection keeps the card cursor inside a column of count cards.
func (s *UIState) ClampSelection(count int) {
	if count == 0 {
		s.selectedProject = 0
		return
	}
	s.selectedProject = min(max(s.selectedProject, 0), count-1)
}

// EnsureSelectionVisible scrolls the selected column so its cursor is within
// the visible window of visible cards.
func (s *UIState) EnsureSelectionVisible(visible int) {
	state := s.SelectedState()
	offset := s.scrollOffsets[state]
	switch {
	case s.selectedProject < offset:
		offset = s.selectedProject
	case visible > 0 && s.selectedProject >= offset+visible:
		offset = s.selectedProject - visible + 1
	}
	s.scrollOffsets[state] = max(offset, 0)
}

// ClampScroll keeps a column's offset valid after it shrank to count cards.
func (s *UIState) ClampScroll(state models.State, count int) {
	if s.scrollOffsets[state] >= count {
		s.scrollOffsets[state] = max(count-1, 0)
	}
}
