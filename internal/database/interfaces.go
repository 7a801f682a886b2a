// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// ProjectStore defines every project persistence operation.
// Both *Repository and its transaction-bound copies implement it.
type ProjectStore interface {
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id uuid.UUID) (models.Project, error)
	CreateProject(ctx context.Context, p models.Project) error
	UpdateProject(ctx context.Context, p models.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
	SetStateOrder(ctx context.Context, state models.State, ids []uuid.UUID) error
	SetUpdatedAt(ctx context.Context, p models.Project) error
	CountProjects(ctx context.Context, state models.State) (int, error)
}

// DataStore is a ProjectStore that can also run work inside a transaction
type DataStore interface {
	ProjectStore
	InTx(ctx context.Context, fn func(ProjectStore) error) error
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)
