// Package testutil holds helpers shared by tests across packages
package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/projectmanager/internal/database"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

// FixedNow is the instant test clocks are pinned to
var FixedNow = time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)

// Clock returns a clock function pinned to FixedNow
func Clock() func() time.Time {
	return func() time.Time { return FixedNow }
}

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// InsertTestProject writes a project row directly, at the end of its state, and returns it.
func InsertTestProject(t *testing.T, db *sql.DB, title string, state models.State, deadline time.Time) models.Project {
	t.Helper()
	p := models.Project{
		ID:          uuid.New(),
		Title:       title,
		Description: "Test description",
		Deadline:    deadline,
		State:       state,
		CreatedAt:   FixedNow,
		UpdatedAt:   FixedNow,
	}
	if err := database.NewRepository(db).CreateProject(context.Background(), p); err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return p
}
