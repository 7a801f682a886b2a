package state

import (
	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

// AppState holds the last board snapshot pulled from the project service.
// It is replaced wholesale after every command.
type AppState struct {
	board projectservice.Board
}

// NewAppState creates a new AppState around board
func NewAppState(board projectservice.Board) *AppState {
	return &AppState{board: board}
}

// Board returns the current snapshot
func (s *AppState) Board() projectservice.Board {
	return s.board
}

// SetBoard replaces the snapshot
func (s *AppState) SetBoard(board projectservice.Board) {
	s.board = board
}

// Column returns the snapshot column for state
func (s *AppState) Column(state models.State) projectservice.Column {
	return s.board.Column(state)
}

// Project returns the project at index in state, if any
func (s *AppState) Project(state models.State, index int) (models.Project, bool) {
	projects := s.board.Column(state).Projects
	if index < 0 || index >= len(projects) {
		return models.Project{}, false
	}
	return projects[index], true
}

// Locate finds the column and index of id in the snapshot
func (s *AppState) Locate(id uuid.UUID) (models.State, int, bool) {
	for _, col := range s.board.Columns {
		for i, p := range col.Projects {
			if p.ID == id {
				return col.State, i, true
			}
		}
	}
	return 0, 0, false
}
