package database

import (
	"context"
	"path/filepath"
	"strings"
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

// setupTestRepo creates an in-memory database with the full schema
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db)
}

func newProject(title string, state models.State) models.Project {
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	return models.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: title + " description",
		Deadline:    now.AddDate(0, 0, 7),
		State:       state,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestProjectCRUDPersistence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	p := newProject("Backend", models.StateToDo)
	require.NoError(t, repo.CreateProject(ctx, p))

	got, err := repo.GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.Description, got.Description)
	assert.Equal(t, models.StateToDo, got.State)
	assert.True(t, got.Deadline.Equal(p.Deadline))
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	assert.Equal(t, time.Local, got.Deadline.Location(), "times come back in local time")

	p.Title = "Backend API"
	p.Deadline = p.Deadline.AddDate(0, 1, 0)
	p.UpdatedAt = p.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.UpdateProject(ctx, p))

	got, err = repo.GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend API", got.Title)
	assert.True(t, got.Deadline.Equal(p.Deadline))

	require.NoError(t, repo.DeleteProject(ctx, p.ID))
	_, err = repo.GetProjectByID(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMissingRowsAreNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)
	missing := newProject("ghost", models.StateDone)

	assert.ErrorIs(t, repo.UpdateProject(ctx, missing), models.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteProject(ctx, missing.ID), models.ErrNotFound)
	assert.ErrorIs(t, repo.SetStateOrder(ctx, models.StateDone, []uuid.UUID{missing.ID}), models.ErrNotFound)
	assert.ErrorIs(t, repo.SetUpdatedAt(ctx, missing), models.ErrNotFound)
}

func TestGetAllProjects_OrderedByStateThenPosition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	doing := newProject("doing", models.StateDoing)
	todoFirst := newProject("todo-1", models.StateToDo)
	todoSecond := newProject("todo-2", models.StateToDo)
	require.NoError(t, repo.CreateProject(ctx, doing))
	require.NoError(t, repo.CreateProject(ctx, todoFirst))
	require.NoError(t, repo.CreateProject(ctx, todoSecond))

	all, err := repo.GetAllProjects(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, todoFirst.ID, all[0].ID)
	assert.Equal(t, todoSecond.ID, all[1].ID)
	assert.Equal(t, doing.ID, all[2].ID)

	count, err := repo.CountProjects(ctx, models.StateToDo)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCreateProject_AppendsAfterStoredPositions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	a := newProject("a", models.StateToDo)
	b := newProject("b", models.StateToDo)
	require.NoError(t, repo.CreateProject(ctx, a))
	require.NoError(t, repo.CreateProject(ctx, b))
	require.NoError(t, repo.SetStateOrder(ctx, models.StateToDo, []uuid.UUID{b.ID, a.ID}))

	c := newProject("c", models.StateToDo)
	require.NoError(t, repo.CreateProject(ctx, c))
	require.NoError(t, repo.CreateProject(ctx, newProject("other state", models.StateDone)))

	rows, err := repo.db.QueryContext(ctx, `SELECT id, position FROM projects WHERE state = ? ORDER BY position`, int(models.StateToDo))
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var order []string
	var positions []int
	for rows.Next() {
		var id string
		var position int
		require.NoError(t, rows.Scan(&id, &position))
		order = append(order, id)
		positions = append(positions, position)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{b.ID.String(), a.ID.String(), c.ID.String()}, order)
	assert.Equal(t, []int{0, 1, 2}, positions)
}

func TestSetStateOrder_MovesBetweenStates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	a := newProject("a", models.StateToDo)
	b := newProject("b", models.StateToDo)
	require.NoError(t, repo.CreateProject(ctx, a))
	require.NoError(t, repo.CreateProject(ctx, b))

	err := repo.InTx(ctx, func(tx ProjectStore) error {
		if err := tx.SetStateOrder(ctx, models.StateToDo, []uuid.UUID{b.ID}); err != nil {
			return err
		}
		return tx.SetStateOrder(ctx, models.StateDone, []uuid.UUID{a.ID})
	})
	require.NoError(t, err)

	got, err := repo.GetProjectByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateDone, got.State)

	all, err := repo.GetAllProjects(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b.ID, a.ID}, []uuid.UUID{all[0].ID, all[1].ID})
}

func TestInTx_RollsBackOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)
	p := newProject("rollback", models.StateToDo)

	err := repo.InTx(ctx, func(tx ProjectStore) error {
		if err := tx.CreateProject(ctx, p); err != nil {
			return err
		}
		return tx.DeleteProject(ctx, uuid.New())
	})
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetProjectByID(ctx, p.ID)
	assert.ErrorIs(t, err, models.ErrNotFound, "insert rolled back")
}

func TestDescriptionLengthConstraint(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := setupTestRepo(t)

	p := newProject("long", models.StateToDo)
	p.Description = strings.Repeat("x", models.DescriptionLimit+1)
	assert.Error(t, repo.CreateProject(ctx, p))
}

func TestInitDB_CreatesFileAndReopens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "board.db")

	db, err := InitDB(ctx, path)
	require.NoError(t, err)
	p := newProject("persisted", models.StateDoing)
	require.NoError(t, NewRepository(db).CreateProject(ctx, p))
	require.NoError(t, db.Close())

	db, err = InitDB(ctx, path)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	got, err := NewRepository(db).GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StateDoing, got.State)
}
