package board

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

var fixedNow = time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(WithClock(func() time.Time { return fixedNow }))
}

func mustCreate(t *testing.T, s *Store, title string, deadline time.Time) models.Project {
	t.Helper()
	p, err := s.Save(title, "desc "+title, deadline, nil)
	require.NoError(t, err)
	return p
}

func ids(projects []models.Project) []uuid.UUID {
	out := make([]uuid.UUID, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

// assertPartitioned checks every id appears in exactly one list
func assertPartitioned(t *testing.T, s *Store) {
	t.Helper()
	seen := make(map[uuid.UUID]models.State)
	for state, list := range s.Snapshot() {
		for _, p := range list {
			prev, dup := seen[p.ID]
			require.Falsef(t, dup, "project %s in both %s and %s", p.ID, prev, state)
			seen[p.ID] = state
			assert.Equal(t, state, p.State)
		}
	}
}

// ============================================================================
// SAVE
// ============================================================================

func TestSave_CreateAppendsToToDo(t *testing.T) {
	s := newTestStore(t)
	tomorrow := fixedNow.AddDate(0, 0, 1)

	before := s.FetchCount(models.StateToDo)
	first := mustCreate(t, s, "A", tomorrow)
	second, err := s.Save("T", "D", tomorrow, nil)
	require.NoError(t, err)

	assert.Equal(t, before+2, s.FetchCount(models.StateToDo))
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, models.StateToDo, second.State)
	assert.Equal(t, fixedNow, second.CreatedAt)

	list, err := s.FetchList(models.StateToDo)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, ids(list))
}

func TestSave_UsesIDGenerator(t *testing.T) {
	first, second := uuid.New(), uuid.New()
	queue := []uuid.UUID{first, second, first}
	s := New(
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() uuid.UUID {
			id := queue[0]
			queue = queue[1:]
			return id
		}),
	)

	a := mustCreate(t, s, "A", fixedNow)
	b := mustCreate(t, s, "B", fixedNow)
	assert.Equal(t, first, a.ID)
	assert.Equal(t, second, b.ID)

	_, err := s.Save("C", "", fixedNow, nil)
	assert.ErrorIs(t, err, ErrDuplicateID, "a reused id is rejected")
	assert.Equal(t, 2, s.FetchCount(models.StateToDo))
	assertPartitioned(t, s)
}

func TestSave_UpdateKeepsStateAndPosition(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "A", fixedNow)
	b := mustCreate(t, s, "B", fixedNow)
	c := mustCreate(t, s, "C", fixedNow)
	_, err := s.MoveProject(b.ID, models.StateDoing)
	require.NoError(t, err)

	newDeadline := fixedNow.AddDate(0, 1, 0)
	updated, err := s.Save("A2", "new desc", newDeadline, &a.ID)
	require.NoError(t, err)

	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "A2", updated.Title)
	assert.Equal(t, newDeadline, updated.Deadline)

	list, _ := s.FetchList(models.StateToDo)
	assert.Equal(t, []uuid.UUID{a.ID, c.ID}, ids(list), "position unchanged")

	updatedB, err := s.Save("B2", "", fixedNow, &b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateDoing, updatedB.State, "state unchanged")
}

func TestSave_UnknownIDIsNotFound(t *testing.T) {
	s := newTestStore(t)
	mustCreate(t, s, "A", fixedNow)

	missing := uuid.New()
	_, err := s.Save("X", "", fixedNow, &missing)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Equal(t, 1, s.FetchCount(models.StateToDo))
}

func TestSaveInState_CreatesInGivenState(t *testing.T) {
	s := newTestStore(t)

	p, err := s.SaveInState("A", "", fixedNow, nil, models.StateDoing)
	require.NoError(t, err)
	assert.Equal(t, models.StateDoing, p.State)
	assert.Equal(t, 1, s.FetchCount(models.StateDoing))

	_, err = s.SaveInState("B", "", fixedNow, nil, models.State(9))
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// ============================================================================
// MOVE
// ============================================================================

func TestMoveProject_AppendsToTail(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "A", fixedNow)
	b := mustCreate(t, s, "B", fixedNow)
	c := mustCreate(t, s, "C", fixedNow)

	for _, to := range []models.State{models.StateDoing, models.StateDone, models.StateToDo} {
		_, err := s.MoveProject(a.ID, to)
		require.NoError(t, err)
	}

	todo, _ := s.FetchList(models.StateToDo)
	doing, _ := s.FetchList(models.StateDoing)
	done, _ := s.FetchList(models.StateDone)

	assert.Equal(t, []uuid.UUID{b.ID, c.ID, a.ID}, ids(todo), "A appended at the tail")
	assert.Empty(t, doing)
	assert.Empty(t, done)
	assertPartitioned(t, s)
}

func TestMoveProject_SameStateIsNoop(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "A", fixedNow)
	b := mustCreate(t, s, "B", fixedNow)
	before := s.Snapshot()

	from, err := s.MoveProject(a.ID, models.StateToDo)
	require.NoError(t, err)

	assert.Equal(t, models.StateToDo, from)
	assert.Equal(t, before, s.Snapshot())
	list, _ := s.FetchList(models.StateToDo)
	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, ids(list))
}

func TestMoveProject_Errors(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "A", fixedNow)

	_, err := s.MoveProject(uuid.New(), models.StateDone)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = s.MoveProject(a.ID, models.State(-1))
	assert.ErrorIs(t, err, models.ErrInvalidState)

	assert.Equal(t, 1, s.FetchCount(models.StateToDo))
}

// ============================================================================
// REMOVE
// ============================================================================

func TestRemoveProject(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "A", fixedNow)
	b := mustCreate(t, s, "B", fixedNow)
	_, err := s.MoveProject(b.ID, models.StateDone)
	require.NoError(t, err)

	removed, err := s.RemoveProject(b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, removed.ID)

	for _, state := range models.States() {
		list, _ := s.FetchList(state)
		assert.NotContains(t, ids(list), b.ID)
	}
	assert.Equal(t, 1, s.FetchCount(models.StateToDo))

	_, err = s.RemoveProject(b.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = s.Get(a.ID)
	assert.NoError(t, err)
}

// ============================================================================
// QUERIES
// ============================================================================

func TestFetchList_IsSnapshot(t *testing.T) {
	s := newTestStore(t)
	a := mustCreate(t, s, "A", fixedNow)

	list, err := s.FetchList(models.StateToDo)
	require.NoError(t, err)
	list[0].Title = "mutated"
	list = append(list, models.Project{ID: uuid.New()})

	stored, err := s.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", stored.Title)
	assert.Equal(t, 1, s.FetchCount(models.StateToDo))

	_, err = s.FetchList(models.State(3))
	assert.ErrorIs(t, err, models.ErrInvalidState)
	assert.Equal(t, 0, s.FetchCount(models.State(3)))
}

func TestIsOverdue_Scenario(t *testing.T) {
	s := newTestStore(t)
	yesterday := fixedNow.AddDate(0, 0, -1)
	a := mustCreate(t, s, "A", yesterday)

	_, index, err := s.Locate(a.ID)
	require.NoError(t, err)
	overdue, err := s.IsOverdue(models.StateToDo, index)
	require.NoError(t, err)
	assert.True(t, overdue)

	_, err = s.MoveProject(a.ID, models.StateDone)
	require.NoError(t, err)
	_, index, err = s.Locate(a.ID)
	require.NoError(t, err)
	overdue, err = s.IsOverdue(models.StateDone, index)
	require.NoError(t, err)
	assert.False(t, overdue)
}

func TestIsOverdue_FutureAndOutOfRange(t *testing.T) {
	s := newTestStore(t)
	mustCreate(t, s, "A", fixedNow.Add(time.Hour))

	overdue, err := s.IsOverdue(models.StateToDo, 0)
	require.NoError(t, err)
	assert.False(t, overdue)

	_, err = s.IsOverdue(models.StateToDo, 1)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
	_, err = s.IsOverdue(models.StateDoing, -1)
	assert.ErrorIs(t, err, models.ErrIndexOutOfRange)
}

func TestTexts(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save("", "", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	texts, err := s.Texts(models.StateToDo, 0)
	require.NoError(t, err)
	assert.Equal(t, models.UntitledPlaceholder, texts.Title)
	assert.Equal(t, models.NoDescriptionPlaceholder, texts.Description)
	assert.Equal(t, "2026-06-01", texts.Deadline)
}

// ============================================================================
// LOAD
// ============================================================================

func TestLoad_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	mustCreate(t, s, "stale", fixedNow)

	a := models.Project{ID: uuid.New(), Title: "A", State: models.StateDoing}
	b := models.Project{ID: uuid.New(), Title: "B", State: models.StateToDo}
	c := models.Project{ID: uuid.New(), Title: "C", State: models.StateDoing}
	require.NoError(t, s.Load([]models.Project{a, b, c}))

	todo, _ := s.FetchList(models.StateToDo)
	doing, _ := s.FetchList(models.StateDoing)
	assert.Equal(t, []uuid.UUID{b.ID}, ids(todo))
	assert.Equal(t, []uuid.UUID{a.ID, c.ID}, ids(doing))
}

func TestLoad_RejectsBadInput(t *testing.T) {
	s := newTestStore(t)
	id := uuid.New()

	err := s.Load([]models.Project{{ID: id}, {ID: id}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	err = s.Load([]models.Project{{ID: uuid.New(), State: models.State(5)}})
	assert.ErrorIs(t, err, models.ErrInvalidState)
}

// ============================================================================
// OBSERVERS
// ============================================================================

func TestSubscribe_NotifiesTouchedStates(t *testing.T) {
	s := newTestStore(t)
	counts := map[models.State]int{}
	for _, state := range models.States() {
		s.Subscribe(state, func(state models.State, projects []models.Project) {
			counts[state] = len(projects)
		})
	}

	a := mustCreate(t, s, "A", fixedNow)
	assert.Equal(t, 1, counts[models.StateToDo])

	_, err := s.MoveProject(a.ID, models.StateDoing)
	require.NoError(t, err)
	assert.Equal(t, 0, counts[models.StateToDo])
	assert.Equal(t, 1, counts[models.StateDoing])
	_, touched := counts[models.StateDone]
	assert.False(t, touched)
}

func TestSubscribe_Unsubscribe(t *testing.T) {
	s := newTestStore(t)
	calls := 0
	unsubscribe := s.Subscribe(models.StateToDo, func(models.State, []models.Project) { calls++ })

	mustCreate(t, s, "A", fixedNow)
	unsubscribe()
	mustCreate(t, s, "B", fixedNow)

	assert.Equal(t, 1, calls)
}

func TestSubscribe_ListenerMayQueryStore(t *testing.T) {
	s := newTestStore(t)
	var seen int
	s.Subscribe(models.StateToDo, func(models.State, []models.Project) {
		seen = s.FetchCount(models.StateToDo)
	})

	mustCreate(t, s, "A", fixedNow)
	assert.Equal(t, 1, seen)
}

// ============================================================================
// PROPERTIES
// ============================================================================

func TestRandomCommands_KeepPartitionInvariant(t *testing.T) {
	s := newTestStore(t)
	rng := rand.New(rand.NewPCG(1, 2))
	var known []uuid.UUID

	for range 500 {
		switch rng.IntN(4) {
		case 0:
			p := mustCreate(t, s, "p", fixedNow)
			known = append(known, p.ID)
		case 1:
			if len(known) > 0 {
				id := known[rng.IntN(len(known))]
				_, _ = s.MoveProject(id, models.States()[rng.IntN(3)])
			}
		case 2:
			if len(known) > 0 {
				i := rng.IntN(len(known))
				_, err := s.RemoveProject(known[i])
				require.NoError(t, err)
				known = append(known[:i], known[i+1:]...)
			}
		case 3:
			if len(known) > 0 {
				id := known[rng.IntN(len(known))]
				_, err := s.Save("edited", "", fixedNow, &id)
				require.NoError(t, err)
			}
		}
		assertPartitioned(t, s)
	}

	total := 0
	for _, state := range models.States() {
		total += s.FetchCount(state)
	}
	assert.Equal(t, len(known), total)
}

func TestConcurrentCommands(t *testing.T) {
	s := New()
	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				p, err := s.Save("p", "", time.Now(), nil)
				if err != nil {
					return
				}
				_, _ = s.MoveProject(p.ID, models.States()[i%3])
			}
		}()
	}
	wg.Wait()

	total := 0
	for _, state := range models.States() {
		total += s.FetchCount(state)
	}
	assert.Equal(t, 400, total)
	assertPartitioned(t, s)
}
