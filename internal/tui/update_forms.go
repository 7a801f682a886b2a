package tui

import (
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
	"github.com/thenoetrevino/projectmanager/internal/tui/forms"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

const deadlineFormatHint = "use YYYY-MM-DD"

// newEditorForm builds the detail editor, prefilled from project when editing.
// A new project starts with today's date as its deadline.
func (m Model) newEditorForm(project *models.Project) *forms.Form {
	var title, description string
	deadline := m.Now().Format(models.DeadlineLayout)
	if project != nil {
		title = project.Title
		description = project.Description
		deadline = project.Deadline.Format(models.DeadlineLayout)
	}

	descField := forms.NewTextArea(state.FieldDescription, "Description", "What needs doing?", description, models.DescriptionLimit)
	descField.SetWidth(editorWidth(m.UiState.Width()) - 6)

	return forms.NewForm(m.Config.KeyMappings.SaveForm,
		forms.NewTextInput(state.FieldTitle, "Title", models.UntitledPlaceholder, title, 0),
		descField,
		forms.NewTextInput(state.FieldDeadline, "Deadline", models.DeadlineLayout, deadline, len(models.DeadlineLayout)),
	)
}

// openEditor switches to EditorMode for project, or for a new project when nil
func (m Model) openEditor(project *models.Project) (tea.Model, tea.Cmd) {
	form := m.newEditorForm(project)
	m.FormState.Open(form, project)
	m.UiState.SetMode(state.EditorMode)
	return m, form.Init()
}

func (m Model) closeEditor() {
	m.FormState.Close()
	m.UiState.SetMode(state.NormalMode)
}

// updateEditor forwards input to the editor and handles save and cancel
func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.FormState.Editor == nil {
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	}

	var cmd tea.Cmd
	m.FormState.Editor, cmd = m.FormState.Editor.Update(msg)

	switch m.FormState.Editor.State() {
	case forms.StateAborted:
		m.closeEditor()
		return m, nil
	case forms.StateCompleted:
		return m.saveEditor()
	}
	return m, cmd
}

// saveEditor validates and saves the editor contents.
// Validation failures keep the editor open with the message under the offending field.
func (m Model) saveEditor() (tea.Model, tea.Cmd) {
	form := m.FormState.Editor
	form.ClearErrors()
	m.NotificationState.Clear()

	deadline, err := m.editorDeadline()
	if err != nil {
		form.Get(state.FieldDeadline).SetError(deadlineFormatHint)
		form.Resume()
		return m, form.FocusKey(state.FieldDeadline)
	}

	req := projectservice.SaveRequest{
		Title:       strings.TrimSpace(m.FormState.Value(state.FieldTitle)),
		Description: m.FormState.Value(state.FieldDescription),
		Deadline:    deadline,
		ID:          m.FormState.EditingID(),
	}

	project, err := m.Service.Save(m.Ctx, req)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			if field := form.Get(vErr.Field); field != nil {
				field.SetError(vErr.Err.Error())
				form.Resume()
				return m, form.FocusKey(vErr.Field)
			}
		}
		if errors.Is(err, models.ErrNotFound) {
			m.closeEditor()
			m.reload()
			m.notifyError("Project no longer exists", err)
			return m, nil
		}
		m.notifyError("Failed to save project", err)
		form.Resume()
		return m, nil
	}

	m.closeEditor()
	m.reload()
	m.selectProject(project.ID)
	m.notifyInfo("Saved " + project.Texts().Title)
	return m, nil
}

// editorDeadline parses the deadline field. An untouched deadline keeps the
// stored value so projects that are already overdue can still be edited.
func (m Model) editorDeadline() (deadline time.Time, err error) {
	text := strings.TrimSpace(m.FormState.Value(state.FieldDeadline))
	if original := m.FormState.Original; original != nil && text == original.Deadline.Format(models.DeadlineLayout) {
		return original.Deadline, nil
	}
	return models.ParseDeadlineOrToday(text, m.Now())
}

// editorWidth is the editor box width for a terminal of width w
func editorWidth(w int) int {
	if w <= 0 {
		return 60
	}
	return min(max(w/2, 50), 80)
}
