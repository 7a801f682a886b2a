package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/board"
	"github.com/thenoetrevino/projectmanager/internal/database"
	"github.com/thenoetrevino/projectmanager/internal/events"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Load replaces the in-memory board with the persisted projects
	Load(ctx context.Context) error

	// Read operations
	List(ctx context.Context, state models.State) ([]models.Project, error)
	Count(ctx context.Context, state models.State) int
	Get(ctx context.Context, id uuid.UUID) (models.Project, error)
	Board(ctx context.Context) (Board, error)
	IsOverdue(ctx context.Context, state models.State, index int) (bool, error)
	Texts(ctx context.Context, state models.State, index int) (models.ProjectTexts, error)

	// Write operations
	Save(ctx context.Context, req SaveRequest) (models.Project, error)
	Move(ctx context.Context, id uuid.UUID, to models.State) (models.Project, error)
	Remove(ctx context.Context, id uuid.UUID) (models.Project, error)
}

// SaveRequest is what the detail editor yields on save.
// A nil ID creates a project; State only applies to new projects and defaults to To Do.
type SaveRequest struct {
	Title       string
	Description string
	Deadline    time.Time
	ID          *uuid.UUID
	State       *models.State
}

// Column is one state's list as rendered on a board
type Column struct {
	State    models.State
	Projects []models.Project
	Overdue  []bool
}

// Count returns the number of projects in the column
func (c Column) Count() int {
	return len(c.Projects)
}

// Board is a consistent snapshot of all three columns
type Board struct {
	Columns []Column
	TakenAt time.Time
}

// Column returns the column for state
func (b Board) Column(state models.State) Column {
	for _, c := range b.Columns {
		if c.State == state {
			return c
		}
	}
	return Column{State: state}
}

// service implements Service on top of the board store and the repository.
// Commands are serialized by mu so the store and the database apply them in the same order.
type service struct {
	mu          sync.Mutex
	store       *board.Store
	repo        database.DataStore
	eventClient events.EventPublisher
}

// NewService creates a new project service. eventClient may be nil.
func NewService(store *board.Store, repo database.DataStore, eventClient events.EventPublisher) Service {
	return &service{
		store:       store,
		repo:        repo,
		eventClient: eventClient,
	}
}

// Load reads every persisted project into the store
func (s *service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reload(ctx); err != nil {
		return err
	}
	s.publish(events.Event{Type: events.EventBoardLoaded})
	return nil
}

func (s *service) reload(ctx context.Context) error {
	projects, err := s.repo.GetAllProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	if err := s.store.Load(projects); err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}
	return nil
}

// List returns the ordered projects in state
func (s *service) List(ctx context.Context, state models.State) ([]models.Project, error) {
	return s.store.FetchList(state)
}

// Count returns the number of projects in state
func (s *service) Count(ctx context.Context, state models.State) int {
	return s.store.FetchCount(state)
}

// Get retrieves a specific project
func (s *service) Get(ctx context.Context, id uuid.UUID) (models.Project, error) {
	return s.store.Get(id)
}

// Board returns all three columns with overdue flags computed at one instant
func (s *service) Board(ctx context.Context) (Board, error) {
	snapshot := s.store.Snapshot()
	now := s.store.Now()

	b := Board{TakenAt: now}
	for _, state := range models.States() {
		projects := snapshot[state]
		overdue := make([]bool, len(projects))
		for i, p := range projects {
			overdue[i] = p.IsOverdue(now)
		}
		b.Columns = append(b.Columns, Column{State: state, Projects: projects, Overdue: overdue})
	}
	return b, nil
}

// IsOverdue reports whether the project at index in state is overdue
func (s *service) IsOverdue(ctx context.Context, state models.State, index int) (bool, error) {
	return s.store.IsOverdue(state, index)
}

// Texts returns the card strings for the project at index in state
func (s *service) Texts(ctx context.Context, state models.State, index int) (models.ProjectTexts, error) {
	return s.store.Texts(state, index)
}

// Save creates or updates a project after applying the editor rules.
// Updating an id that no longer exists returns ErrProjectNotFound.
func (s *service) Save(ctx context.Context, req SaveRequest) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == nil {
		return s.create(ctx, req)
	}
	return s.update(ctx, req)
}

func (s *service) create(ctx context.Context, req SaveRequest) (models.Project, error) {
	if err := ValidateEditor(req.Description, req.Deadline, s.store.Now()); err != nil {
		return models.Project{}, err
	}

	state := models.StateToDo
	if req.State != nil {
		state = *req.State
	}

	project, err := s.store.SaveInState(req.Title, req.Description, req.Deadline, nil, state)
	if err != nil {
		return models.Project{}, err
	}

	if err := s.repo.CreateProject(ctx, project); err != nil {
		return models.Project{}, s.resync(ctx, fmt.Errorf("failed to create project: %w", err))
	}

	s.publish(events.Event{
		Type:      events.EventProjectSaved,
		ProjectID: project.ID,
		From:      state,
		To:        state,
		Created:   true,
	})
	return project, nil
}

func (s *service) update(ctx context.Context, req SaveRequest) (models.Project, error) {
	existing, err := s.store.Get(*req.ID)
	if err != nil {
		return models.Project{}, err
	}

	// An unchanged deadline is not re-validated, so overdue projects stay editable
	deadlineCheck := req.Deadline
	if req.Deadline.Equal(existing.Deadline) {
		deadlineCheck = s.store.Now()
	}
	if err := ValidateEditor(req.Description, deadlineCheck, s.store.Now()); err != nil {
		return models.Project{}, err
	}

	project, err := s.store.Save(req.Title, req.Description, req.Deadline, req.ID)
	if err != nil {
		return models.Project{}, err
	}

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return models.Project{}, s.resync(ctx, fmt.Errorf("failed to update project: %w", err))
	}

	s.publish(events.Event{
		Type:      events.EventProjectSaved,
		ProjectID: project.ID,
		From:      project.State,
		To:        project.State,
	})
	return project, nil
}

// Move transitions a project to another state, appending it to that state's list.
// Moving to the current state is a no-op.
func (s *service) Move(ctx context.Context, id uuid.UUID, to models.State) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, err := s.store.MoveProject(id, to)
	if err != nil {
		return models.Project{}, err
	}

	project, err := s.store.Get(id)
	if err != nil {
		return models.Project{}, err
	}
	if from == to {
		return project, nil
	}

	err = s.repo.InTx(ctx, func(tx database.ProjectStore) error {
		if err := s.persistOrder(ctx, tx, from); err != nil {
			return err
		}
		if err := s.persistOrder(ctx, tx, to); err != nil {
			return err
		}
		return tx.SetUpdatedAt(ctx, project)
	})
	if err != nil {
		return models.Project{}, s.resync(ctx, fmt.Errorf("failed to move project: %w", err))
	}

	s.publish(events.Event{
		Type:      events.EventProjectMoved,
		ProjectID: id,
		From:      from,
		To:        to,
	})
	return project, nil
}

// Remove deletes a project from whichever state holds it
func (s *service) Remove(ctx context.Context, id uuid.UUID) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.store.RemoveProject(id)
	if err != nil {
		return models.Project{}, err
	}

	err = s.repo.InTx(ctx, func(tx database.ProjectStore) error {
		if err := tx.DeleteProject(ctx, id); err != nil {
			return err
		}
		return s.persistOrder(ctx, tx, removed.State)
	})
	if err != nil {
		return models.Project{}, s.resync(ctx, fmt.Errorf("failed to remove project: %w", err))
	}

	s.publish(events.Event{
		Type:      events.EventProjectRemoved,
		ProjectID: id,
		From:      removed.State,
		To:        removed.State,
	})
	return removed, nil
}

// persistOrder mirrors the store's list for state into the database
func (s *service) persistOrder(ctx context.Context, tx database.ProjectStore, state models.State) error {
	list, err := s.store.FetchList(state)
	if err != nil {
		return err
	}
	ids := make([]uuid.UUID, len(list))
	for i, p := range list {
		ids[i] = p.ID
	}
	return tx.SetStateOrder(ctx, state, ids)
}

// resync reloads the store from the database after a failed write so the two never diverge.
// It returns cause, joined with the reload error if that failed too.
func (s *service) resync(ctx context.Context, cause error) error {
	if err := s.reload(ctx); err != nil {
		slog.Error("failed to reload board after write failure", "error", err, "cause", cause)
		return errors.Join(cause, err)
	}
	return cause
}

// publish sends an event if a publisher is configured. Errors are logged, not returned.
func (s *service) publish(event events.Event) {
	if s.eventClient == nil {
		return
	}

	if err := s.eventClient.SendEvent(event); err != nil {
		slog.Error("failed to send event", "type", event.Type, "project", event.ProjectID, "error", err)
	}
}
