package tui

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/config"
	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
	"github.com/thenoetrevino/projectmanager/internal/tui/components"
	"github.com/thenoetrevino/projectmanager/internal/tui/state"
)

// Model represents the application state for the TUI.
// It never caches projects beyond the last board snapshot: every command
// goes through the project service and is followed by a fresh Board query.
type Model struct {
	Ctx     context.Context
	Service projectservice.Service
	Config  *config.Config
	Now     func() time.Time

	AppState          *state.AppState
	UiState           *state.UIState
	FormState         *state.FormState
	MenuState         *state.ActionMenuState
	NotificationState *state.NotificationState
	ConfirmState      *state.DeleteConfirmState
}

// InitialModel creates the TUI model and loads the first board snapshot.
// now may be nil, in which case time.Now is used.
func InitialModel(ctx context.Context, svc projectservice.Service, cfg *config.Config, now func() time.Time) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if now == nil {
		now = time.Now
	}

	m := Model{
		Ctx:               ctx,
		Service:           svc,
		Config:            cfg,
		Now:               now,
		AppState:          state.NewAppState(projectservice.Board{}),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		MenuState:         state.NewActionMenuState(),
		NotificationState: state.NewNotificationState(),
		ConfirmState:      state.NewDeleteConfirmState(),
	}
	m.reload()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// reload pulls a fresh board from the service and keeps the cursor in range
func (m *Model) reload() {
	board, err := m.Service.Board(m.Ctx)
	if err != nil {
		slog.Error("failed to load board", "error", err)
		m.NotificationState.Add(state.LevelError, "Failed to load board: "+err.Error())
		return
	}
	m.AppState.SetBoard(board)

	for _, s := range models.States() {
		m.UiState.ClampScroll(s, board.Column(s).Count())
	}
	m.UiState.ClampSelection(len(m.currentProjects()))
	m.UiState.EnsureSelectionVisible(m.visibleCards())
}

// selectProject moves the cursor onto id if it is on the board
func (m *Model) selectProject(id uuid.UUID) {
	s, index, ok := m.AppState.Locate(id)
	if !ok {
		return
	}
	m.UiState.SetSelectedColumn(int(s))
	m.UiState.SetSelectedProject(index)
	m.UiState.EnsureSelectionVisible(m.visibleCards())
}

// currentProjects returns the projects of the selected column
func (m Model) currentProjects() []models.Project {
	return m.AppState.Column(m.UiState.SelectedState()).Projects
}

// currentProject returns the project under the cursor
func (m Model) currentProject() (models.Project, bool) {
	return m.AppState.Project(m.UiState.SelectedState(), m.UiState.SelectedProject())
}

// visibleCards is how many cards fit in a column at the current height
func (m Model) visibleCards() int {
	return components.VisibleCards(m.UiState.ContentHeight())
}

func (m *Model) notifyError(msg string, err error) {
	slog.Error(msg, "error", err)
	m.NotificationState.Add(state.LevelError, msg+": "+err.Error())
}

func (m *Model) notifyInfo(msg string) {
	m.NotificationState.Add(state.LevelInfo, msg)
}
