// Package board holds the in-memory board state: three ordered project lists keyed by state.
//
// The store is the single source of truth for which state each project is in. It keeps no
// indices beyond the three partitions; lookups scan the lists, which stay small because every
// project is entered by hand.
package board

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ErrDuplicateID indicates Load was handed two projects with the same identifier
var ErrDuplicateID = errors.New("duplicate project id")

// Listener receives a snapshot of one state's list after a mutation touched it
type Listener func(state models.State, projects []models.Project)

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now, used for overdue checks and timestamps
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithIDGenerator replaces uuid.New for newly created projects
func WithIDGenerator(gen func() uuid.UUID) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// Store holds every project partitioned by state.
// All methods are safe for concurrent use; listeners run after the lock is released.
type Store struct {
	mu    sync.RWMutex
	lists map[models.State][]models.Project

	clock func() time.Time
	newID func() uuid.UUID

	listenerMu   sync.Mutex
	listeners    map[models.State]map[int]Listener
	nextListener int
}

// New creates an empty store
func New(opts ...Option) *Store {
	s := &Store{
		lists:     make(map[models.State][]models.Project, 3),
		clock:     time.Now,
		newID:     uuid.New,
		listeners: make(map[models.State]map[int]Listener, 3),
	}
	for _, state := range models.States() {
		s.lists[state] = nil
		s.listeners[state] = make(map[int]Listener)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the store's current time
func (s *Store) Now() time.Time {
	return s.clock()
}

// ============================================================================
// QUERIES
// ============================================================================

// FetchList returns a copy of the ordered list for state
func (s *Store) FetchList(state models.State) ([]models.Project, error) {
	if !state.Valid() {
		return nil, fmt.Errorf("%w: %d", models.ErrInvalidState, int(state))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.lists[state]), nil
}

// FetchCount returns how many projects are in state. Invalid states count as zero.
func (s *Store) FetchCount(state models.State) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[state])
}

// Snapshot returns a copy of all three lists
func (s *Store) Snapshot() map[models.State][]models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[models.State][]models.Project, 3)
	for _, state := range models.States() {
		snapshot[state] = slices.Clone(s.lists[state])
	}
	return snapshot
}

// Get returns the project with id, wherever it is
func (s *Store) Get(id uuid.UUID) (models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, index, ok := s.locate(id)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return s.lists[state][index], nil
}

// Locate returns the state and index currently holding id
func (s *Store) Locate(id uuid.UUID) (models.State, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, index, ok := s.locate(id)
	if !ok {
		return 0, -1, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return state, index, nil
}

// IsOverdue reports whether the project at index in state has a deadline strictly before
// now and is not done.
func (s *Store) IsOverdue(state models.State, index int) (bool, error) {
	project, err := s.at(state, index)
	if err != nil {
		return false, err
	}
	return project.IsOverdue(s.clock()), nil
}

// Texts returns the card strings for the project at index in state
func (s *Store) Texts(state models.State, index int) (models.ProjectTexts, error) {
	project, err := s.at(state, index)
	if err != nil {
		return models.ProjectTexts{}, err
	}
	return project.Texts(), nil
}

func (s *Store) at(state models.State, index int) (models.Project, error) {
	if !state.Valid() {
		return models.Project{}, fmt.Errorf("%w: %d", models.ErrInvalidState, int(state))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[state]
	if index < 0 || index >= len(list) {
		return models.Project{}, fmt.Errorf("%w: %s[%d]", models.ErrIndexOutOfRange, state, index)
	}
	return list[index], nil
}

// locate scans the three lists. Caller must hold mu.
func (s *Store) locate(id uuid.UUID) (models.State, int, bool) {
	for _, state := range models.States() {
		for i, p := range s.lists[state] {
			if p.ID == id {
				return state, i, true
			}
		}
	}
	return 0, -1, false
}

// ============================================================================
// COMMANDS
// ============================================================================

// Save creates a project in To Do when id is nil, otherwise updates the existing project's
// title, description and deadline in place. Updating an unknown id returns ErrNotFound.
func (s *Store) Save(title, description string, deadline time.Time, id *uuid.UUID) (models.Project, error) {
	return s.SaveInState(title, description, deadline, id, models.StateToDo)
}

// SaveInState is Save with an explicit state for new projects.
// The state is ignored on update: an edited project keeps its state and position.
func (s *Store) SaveInState(title, description string, deadline time.Time, id *uuid.UUID, state models.State) (models.Project, error) {
	if id == nil {
		return s.create(title, description, deadline, state)
	}
	return s.update(*id, title, description, deadline)
}

func (s *Store) create(title, description string, deadline time.Time, state models.State) (models.Project, error) {
	if !state.Valid() {
		return models.Project{}, fmt.Errorf("%w: %d", models.ErrInvalidState, int(state))
	}

	s.mu.Lock()
	id := s.newID()
	if _, _, taken := s.locate(id); taken {
		s.mu.Unlock()
		return models.Project{}, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	now := s.clock()
	project := models.Project{
		ID:          id,
		Title:       title,
		Description: description,
		Deadline:    deadline,
		State:       state,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.lists[state] = append(s.lists[state], project)
	s.mu.Unlock()

	s.notify(state)
	return project, nil
}

func (s *Store) update(id uuid.UUID, title, description string, deadline time.Time) (models.Project, error) {
	s.mu.Lock()
	state, index, ok := s.locate(id)
	if !ok {
		s.mu.Unlock()
		return models.Project{}, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}

	project := &s.lists[state][index]
	project.Title = title
	project.Description = description
	project.Deadline = deadline
	project.UpdatedAt = s.clock()
	updated := *project
	s.mu.Unlock()

	s.notify(state)
	return updated, nil
}

// MoveProject removes the project from its current list and appends it to to's list.
// Moving to the state it is already in changes nothing. Returns the state it came from.
func (s *Store) MoveProject(id uuid.UUID, to models.State) (models.State, error) {
	if !to.Valid() {
		return 0, fmt.Errorf("%w: %d", models.ErrInvalidState, int(to))
	}

	s.mu.Lock()
	from, index, ok := s.locate(id)
	if !ok {
		s.mu.Unlock()
		return 0, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	if from == to {
		s.mu.Unlock()
		return from, nil
	}

	project := s.lists[from][index]
	s.lists[from] = slices.Delete(s.lists[from], index, index+1)
	project.State = to
	project.UpdatedAt = s.clock()
	s.lists[to] = append(s.lists[to], project)
	s.mu.Unlock()

	s.notify(from, to)
	return from, nil
}

// RemoveProject deletes the project from whichever list holds it and returns it
func (s *Store) RemoveProject(id uuid.UUID) (models.Project, error) {
	s.mu.Lock()
	state, index, ok := s.locate(id)
	if !ok {
		s.mu.Unlock()
		return models.Project{}, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}

	removed := s.lists[state][index]
	s.lists[state] = slices.Delete(s.lists[state], index, index+1)
	s.mu.Unlock()

	s.notify(state)
	return removed, nil
}

// Load replaces the whole board with previously persisted projects.
// Projects are appended to their state's list in the order given.
// Times are moved into the clock's location so deadlines keep their calendar day.
func (s *Store) Load(projects []models.Project) error {
	lists := make(map[models.State][]models.Project, 3)
	seen := make(map[uuid.UUID]struct{}, len(projects))
	loc := s.Now().Location()

	for _, p := range projects {
		p.Deadline = p.Deadline.In(loc)
		p.CreatedAt = p.CreatedAt.In(loc)
		p.UpdatedAt = p.UpdatedAt.In(loc)

		if !p.State.Valid() {
			return fmt.Errorf("project %s: %w: %d", p.ID, models.ErrInvalidState, int(p.State))
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateID, p.ID)
		}
		seen[p.ID] = struct{}{}
		lists[p.State] = append(lists[p.State], p)
	}

	s.mu.Lock()
	for _, state := range models.States() {
		s.lists[state] = lists[state]
	}
	s.mu.Unlock()

	s.notify(models.States()...)
	return nil
}

// ============================================================================
// OBSERVERS
// ============================================================================

// Subscribe registers fn to run after every mutation touching state.
// The returned function removes the registration.
func (s *Store) Subscribe(state models.State, fn Listener) func() {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()

	id := s.nextListener
	s.nextListener++
	if s.listeners[state] == nil {
		s.listeners[state] = make(map[int]Listener)
	}
	s.listeners[state][id] = fn

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		delete(s.listeners[state], id)
	}
}

// notify hands each touched state's snapshot to its listeners. Must not be called with mu held.
func (s *Store) notify(states ...models.State) {
	for _, state := range states {
		s.listenerMu.Lock()
		fns := make([]Listener, 0, len(s.listeners[state]))
		for _, fn := range s.listeners[state] {
			fns = append(fns, fn)
		}
		s.listenerMu.Unlock()

		if len(fns) == 0 {
			continue
		}

		list, err := s.FetchList(state)
		if err != nil {
			continue
		}
		for _, fn := range fns {
			fn(state, slices.Clone(list))
		}
	}
}
