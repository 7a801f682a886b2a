package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projectmanager/internal/tui/components"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", " ":
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// helpText lists the active key bindings
func (m Model) helpText() string {
	km := m.Config.KeyMappings
	rows := []struct{ keys, action string }{
		{km.PrevColumn + " / " + km.NextColumn, "previous / next column"},
		{km.PrevProject + " / " + km.NextProject, "previous / next project"},
		{km.AddProject, "add project"},
		{km.EditProject + " / enter", "edit project"},
		{km.ActionMenu, "actions (move, delete)"},
		{km.MoveProjectLeft + " / " + km.MoveProjectRight, "move project left / right"},
		{km.DeleteProject, "delete project"},
		{km.SaveForm, "save in editor"},
		{"esc", "cancel"},
		{km.ShowHelp, "toggle help"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keys") + "\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%-12s %s\n", row.keys, components.SubtleStyle.Render(row.action))
	}
	return strings.TrimRight(b.String(), "\n")
}
