package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*ProjectRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ProjectRepo: &ProjectRepo{q: db},
		db:          db,
	}
}

// BeginTx starts a transaction on the underlying connection
func (r *Repository) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// WithTx returns a repository whose statements run inside tx
func (r *Repository) WithTx(tx *sql.Tx) ProjectStore {
	return &Repository{
		ProjectRepo: &ProjectRepo{q: tx},
		db:          r.db,
	}
}

// InTx runs fn inside a transaction, committing when fn returns nil
func (r *Repository) InTx(ctx context.Context, fn func(ProjectStore) error) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		return fn(r.WithTx(tx))
	})
}

// Wrapper methods for ProjectRepo to keep the service-facing names explicit
func (r *Repository) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return r.ProjectRepo.GetAll(ctx)
}

func (r *Repository) GetProjectByID(ctx context.Context, id uuid.UUID) (models.Project, error) {
	return r.ProjectRepo.GetByID(ctx, id)
}

func (r *Repository) CreateProject(ctx context.Context, p models.Project) error {
	return r.ProjectRepo.Create(ctx, p)
}

func (r *Repository) UpdateProject(ctx context.Context, p models.Project) error {
	return r.ProjectRepo.Update(ctx, p)
}

func (r *Repository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return r.ProjectRepo.Delete(ctx, id)
}

func (r *Repository) CountProjects(ctx context.Context, state models.State) (int, error) {
	return r.ProjectRepo.Count(ctx, state)
}
