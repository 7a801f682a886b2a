package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/tui/huhforms"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

// openDeleteConfirm asks before removing the project with id
func (m Model) openDeleteConfirm(id uuid.UUID) (tea.Model, tea.Cmd) {
	title := models.UntitledPlaceholder
	if s, i, ok := m.AppState.Locate(id); ok {
		if p, found := m.AppState.Project(s, i); found {
			title = p.Texts().Title
		}
	}

	form := m.ConfirmState.Open(id, func(confirm *bool) *huh.Form {
		return huhforms.DeleteConfirmForm(title, confirm).
			WithTheme(huhforms.Theme(m.Config.ColorScheme))
	})
	m.UiState.SetMode(state.DeleteConfirmMode)
	return m, form.Init()
}

// updateDeleteConfirm drives the confirmation form.
// y and n answer directly; esc cancels; everything else goes to the form.
func (m Model) updateDeleteConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.ConfirmState.Form
	if form == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			m.ConfirmState.Confirmed = true
			form.State = huh.StateCompleted
		case "n", "N", "esc":
			m.ConfirmState.Confirmed = false
			form.State = huh.StateAborted
		}
	}

	var cmd tea.Cmd
	if form.State == huh.StateNormal {
		var updated huh.Model
		updated, cmd = form.Update(msg)
		if f, ok := updated.(*huh.Form); ok {
			m.ConfirmState.Form = f
			form = f
		}
	}

	switch form.State {
	case huh.StateCompleted:
		return m.finishDeleteConfirm(m.ConfirmState.Confirmed)
	case huh.StateAborted:
		return m.finishDeleteConfirm(false)
	}
	return m, cmd
}

func (m Model) finishDeleteConfirm(confirmed bool) (tea.Model, tea.Cmd) {
	id := m.ConfirmState.ProjectID
	m.ConfirmState.Close()
	m.UiState.SetMode(state.NormalMode)
	if confirmed {
		m.removeProject(id)
	}
	return m, nil
}
