package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	q querier
}

const projectColumns = `id, title, description, deadline, state, position, created_at, updated_at`

// GetAll returns every project ordered by state, then position.
// This is the order the board store expects from Load.
func (r *ProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY state, position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}

// GetByID retrieves a project by its ID
func (r *ProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (models.Project, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id.String())

	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return project, err
}

// Create appends a new project to the end of its state.
// The position is taken from the table inside the insert, so a second process
// writing the same board never reuses a position.
func (r *ProjectRepo) Create(ctx context.Context, p models.Project) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`)
		SELECT ?, ?, ?, ?, ?, COALESCE(MAX(position), -1) + 1, ?, ?
		FROM projects WHERE state = ?`,
		p.ID.String(), p.Title, p.Description, formatTime(p.Deadline),
		int(p.State), formatTime(p.CreatedAt), formatTime(p.UpdatedAt), int(p.State),
	)
	if err != nil {
		return fmt.Errorf("failed to insert project '%s': %w", p.Title, err)
	}
	return nil
}

// Update writes title, description, deadline and updated_at. State and position are untouched.
func (r *ProjectRepo) Update(ctx context.Context, p models.Project) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE projects SET title = ?, description = ?, deadline = ?, updated_at = ? WHERE id = ?`,
		p.Title, p.Description, formatTime(p.Deadline), formatTime(p.UpdatedAt), p.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", p.ID, err)
	}
	return requireAffected(result, p.ID)
}

// Delete removes a project
func (r *ProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", id, err)
	}
	return requireAffected(result, id)
}

// SetStateOrder assigns state and positions 0..n-1 to ids, in order.
// Used after moves and removals to mirror a state list from the board store.
func (r *ProjectRepo) SetStateOrder(ctx context.Context, state models.State, ids []uuid.UUID) error {
	for position, id := range ids {
		result, err := r.q.ExecContext(ctx,
			`UPDATE projects SET state = ?, position = ? WHERE id = ?`,
			int(state), position, id.String(),
		)
		if err != nil {
			return fmt.Errorf("failed to reorder project %s: %w", id, err)
		}
		if err := requireAffected(result, id); err != nil {
			return err
		}
	}
	return nil
}

// SetUpdatedAt stamps a project's updated_at, used when a move changes its state
func (r *ProjectRepo) SetUpdatedAt(ctx context.Context, p models.Project) error {
	result, err := r.q.ExecContext(ctx,
		`UPDATE projects SET updated_at = ? WHERE id = ?`, formatTime(p.UpdatedAt), p.ID.String())
	if err != nil {
		return fmt.Errorf("failed to touch project %s: %w", p.ID, err)
	}
	return requireAffected(result, p.ID)
}

// Count returns the number of stored projects in state
func (r *ProjectRepo) Count(ctx context.Context, state models.State) (int, error) {
	var count int
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE state = ?`, int(state)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var (
		p                             models.Project
		id, deadline, created, updated string
		state, position               int
	)
	if err := row.Scan(&id, &p.Title, &p.Description, &deadline, &state, &position, &created, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Project{}, err
		}
		return models.Project{}, fmt.Errorf("failed to scan project: %w", err)
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Project{}, fmt.Errorf("invalid project id %q: %w", id, err)
	}
	p.ID = parsed
	p.State = models.State(state)

	if p.Deadline, err = parseTime(deadline); err != nil {
		return models.Project{}, err
	}
	if p.CreatedAt, err = parseTime(created); err != nil {
		return models.Project{}, err
	}
	if p.UpdatedAt, err = parseTime(updated); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func requireAffected(result sql.Result, id uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", models.ErrNotFound, id)
	}
	return nil
}
