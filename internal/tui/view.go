package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/tui/components"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	view := tea.View{AltScreen: true}

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	switch m.UiState.Mode() {
	case state.EditorMode:
		view.Content = m.place(m.viewEditor())
	case state.ActionMenuMode:
		view.Content = m.place(m.viewActionMenu())
	case state.DeleteConfirmMode:
		view.Content = m.place(m.viewDeleteConfirm())
	case state.HelpMode:
		view.Content = m.place(components.HelpBoxStyle.Render(m.helpText()))
	default:
		view.Content = m.viewBoard()
	}
	return view
}

// place centers a dialog on the screen
func (m Model) place(box string) string {
	return lipgloss.Place(
		m.UiState.Width(), m.UiState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}

// viewBoard renders the three columns side by side with the status bar below
func (m Model) viewBoard() string {
	height := m.UiState.ContentHeight()

	columns := make([]string, 0, len(models.States()))
	for i, s := range models.States() {
		col := m.AppState.Column(s)
		selected := i == m.UiState.SelectedColumn()
		columns = append(columns, components.RenderColumn(components.ColumnProps{
			State:         s,
			Projects:      col.Projects,
			Overdue:       col.Overdue,
			Selected:      selected,
			SelectedIndex: m.UiState.SelectedProject(),
			Height:        height,
			ScrollOffset:  m.UiState.ScrollOffset(s),
		}))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.JoinVertical(lipgloss.Left, board, m.viewStatusBar())
}

func (m Model) viewStatusBar() string {
	props := components.StatusBarProps{
		Width:   m.UiState.Width(),
		HelpKey: m.Config.KeyMappings.ShowHelp,
	}
	if n, ok := m.NotificationState.Current(); ok {
		props.Notification = n.Message
		props.IsError = n.Level == state.LevelError
	}
	return components.RenderStatusBar(props)
}

func (m Model) viewEditor() string {
	if m.FormState.Editor == nil {
		return ""
	}

	header := "New Project"
	box := components.CreateBoxStyle
	if !m.FormState.IsNew() {
		header = "Edit Project"
		box = components.EditBoxStyle
	}

	km := m.Config.KeyMappings
	footer := components.SubtleStyle.Render(km.SaveForm + " save • tab next field • esc cancel")
	if n, ok := m.NotificationState.Current(); ok && n.Level == state.LevelError {
		footer = components.ErrorBannerStyle.Render(n.Message) + "\n" + footer
	}

	content := strings.Join([]string{
		components.TitleStyle.Render(header),
		m.FormState.Editor.View(),
		footer,
	}, "\n\n")
	return box.Width(editorWidth(m.UiState.Width())).Render(content)
}

func (m Model) viewActionMenu() string {
	var b strings.Builder
	if project, ok := m.AppState.Project(m.UiState.SelectedState(), m.UiState.SelectedProject()); ok {
		b.WriteString(components.TitleStyle.Render(project.Texts().Title) + "\n\n")
	}
	for i, item := range m.MenuState.Items() {
		if i == m.MenuState.Cursor() {
			b.WriteString(components.MenuCursorStyle.Render("> " + item.Label))
		} else {
			b.WriteString(components.MenuItemStyle.Render(item.Label))
		}
		b.WriteString("\n")
	}
	return components.MenuBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) viewDeleteConfirm() string {
	if m.ConfirmState.Form == nil {
		return ""
	}
	return components.DeleteConfirmBoxStyle.Width(50).Render(
		m.ConfirmState.Form.View() + "\n\n" + components.SubtleStyle.Render("y delete • n cancel"),
	)
}
