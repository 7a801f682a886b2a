package tui

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.AddProject:
		return m.handleAddProject()
	case km.EditProject, "enter":
		return m.handleEditProject()
	case km.DeleteProject:
		return m.handleDeleteProject()
	case km.ActionMenu:
		return m.handleOpenActionMenu()
	case km.PrevColumn, "left":
		return m.handleNavigateColumn(-1)
	case km.NextColumn, "right":
		return m.handleNavigateColumn(1)
	case km.NextProject, "down":
		return m.handleNavigateProject(1)
	case km.PrevProject, "up":
		return m.handleNavigateProject(-1)
	case km.MoveProjectLeft:
		return m.handleQuickMove(-1)
	case km.MoveProjectRight:
		return m.handleQuickMove(1)
	}

	return m, nil
}

func (m Model) handleNavigateColumn(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedColumn() + delta
	if next < 0 || next >= len(models.States()) {
		return m, nil
	}
	m.UiState.SetSelectedColumn(next)
	m.UiState.ClampSelection(len(m.currentProjects()))
	m.UiState.EnsureSelectionVisible(m.visibleCards())
	return m, nil
}

func (m Model) handleNavigateProject(delta int) (tea.Model, tea.Cmd) {
	next := m.UiState.SelectedProject() + delta
	if next < 0 || next >= len(m.currentProjects()) {
		return m, nil
	}
	m.UiState.SetSelectedProject(next)
	m.UiState.EnsureSelectionVisible(m.visibleCards())
	return m, nil
}

func (m Model) handleAddProject() (tea.Model, tea.Cmd) {
	return m.openEditor(nil)
}

func (m Model) handleEditProject() (tea.Model, tea.Cmd) {
	project, ok := m.currentProject()
	if !ok {
		return m, nil
	}
	return m.openEditor(&project)
}

func (m Model) handleDeleteProject() (tea.Model, tea.Cmd) {
	project, ok := m.currentProject()
	if !ok {
		return m, nil
	}
	return m.openDeleteConfirm(project.ID)
}

func (m Model) handleOpenActionMenu() (tea.Model, tea.Cmd) {
	project, ok := m.currentProject()
	if !ok {
		return m, nil
	}
	m.MenuState.Open(project.ID, project.State)
	m.UiState.SetMode(state.ActionMenuMode)
	return m, nil
}

// handleQuickMove moves the selected project one column left or right.
// The cursor follows the project.
func (m Model) handleQuickMove(delta int) (tea.Model, tea.Cmd) {
	project, ok := m.currentProject()
	if !ok {
		return m, nil
	}
	target := project.State + models.State(delta)
	if !target.Valid() {
		return m, nil
	}
	m.moveProject(project.ID, target)
	return m, nil
}

// moveProject runs the move command and refreshes the board
func (m *Model) moveProject(id uuid.UUID, to models.State) {
	moved, err := m.Service.Move(m.Ctx, id, to)
	if err != nil {
		m.notifyError("Failed to move project", err)
		m.reload()
		return
	}
	slog.Debug("project moved", "id", id, "to", to)
	m.reload()
	m.selectProject(moved.ID)
	m.notifyInfo("Moved to " + to.Title())
}

// removeProject runs the remove command and refreshes the board
func (m *Model) removeProject(id uuid.UUID) {
	if _, err := m.Service.Remove(m.Ctx, id); err != nil {
		m.notifyError("Failed to delete project", err)
		m.reload()
		return
	}
	m.reload()
	m.notifyInfo("Project deleted")
}
