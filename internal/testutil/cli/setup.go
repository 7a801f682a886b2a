package cli

import (
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/projectmanager/internal/app"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The board clock is pinned to testutil.FixedNow.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T, seed ...models.Project) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	for _, p := range seed {
		testutil.InsertTestProject(t, db, p.Title, p.State, p.Deadline)
	}

	appInstance, err := app.New(t.Context(), db, app.WithClock(testutil.Clock()))
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}

	return db, appInstance
}

// Seed builds a seed project for SetupCLITest due days after testutil.FixedNow
func Seed(title string, state models.State, days int) models.Project {
	return models.Project{
		Title:    title,
		State:    state,
		Deadline: models.EndOfDay(testutil.FixedNow.Add(time.Duration(days) * 24 * time.Hour)),
	}
}
