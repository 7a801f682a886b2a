package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

// handleActionMenuMode drives the per-card action menu.
// Moves run immediately; Delete goes through the usual confirmation.
func (m Model) handleActionMenuMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.NextProject, "down", "tab":
		m.MenuState.Next()
	case km.PrevProject, "up", "shift+tab":
		m.MenuState.Prev()
	case "esc", km.ActionMenu, km.Quit:
		m.MenuState.Close()
		m.UiState.SetMode(state.NormalMode)
	case "enter", " ":
		return m.runMenuItem()
	}
	return m, nil
}

func (m Model) runMenuItem() (tea.Model, tea.Cmd) {
	item, ok := m.MenuState.Selected()
	id := m.MenuState.ProjectID()
	m.MenuState.Close()
	m.UiState.SetMode(state.NormalMode)
	if !ok {
		return m, nil
	}

	switch item.Action {
	case state.ActionMove:
		m.moveProject(id, item.Target)
	case state.ActionDelete:
		return m.openDeleteConfirm(id)
	}
	return m, nil
}
