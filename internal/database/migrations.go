package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create projects table. state: 0 = todo, 1 = doing, 2 = done.
	// position orders projects within a state; moves append, so gaps are fine.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '' CHECK(length(description) <= 1000),
			deadline TEXT NOT NULL,
			state INTEGER NOT NULL CHECK(state BETWEEN 0 AND 2),
			position INTEGER NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create index for ordered per-state reads
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_projects_state_position
		ON projects(state, position)
	`)
	return err
}
