package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.UiState.EnsureSelectionVisible(m.visibleCards())
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.UiState.Mode() {
		case state.EditorMode:
			return m.updateEditor(msg)
		case state.ActionMenuMode:
			return m.handleActionMenuMode(msg)
		case state.DeleteConfirmMode:
			return m.updateDeleteConfirm(msg)
		case state.HelpMode:
			return m.handleHelpMode(msg)
		default:
			return m.handleNormalMode(msg)
		}
	}

	// Cursor blink and other field messages belong to the open dialog
	switch m.UiState.Mode() {
	case state.EditorMode:
		return m.updateEditor(msg)
	case state.DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	}
	return m, nil
}
