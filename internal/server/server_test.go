package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/projectmanager/internal/app"
	"github.com/thenoetrevino/projectmanager/internal/converters"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/testutil"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func setupServer(t *testing.T) (*Server, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	application, err := app.New(context.Background(), db, app.WithClock(testutil.Clock()))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(application, logger), application
}

func do(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		reader = buf
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func createProject(t *testing.T, s *Server, req CreateProjectRequest) converters.ProjectView {
	t.Helper()
	rec := do(t, s, http.MethodPost, "/api/v1/projects", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[converters.ProjectView](t, rec)
}

// ============================================================================
// PROJECT ROUTES
// ============================================================================

func TestCreateProject(t *testing.T) {
	s, application := setupServer(t)

	rec := do(t, s, http.MethodPost, "/api/v1/projects", CreateProjectRequest{
		Title:       "Thesis",
		Description: "Chapters 1-3",
		Deadline:    "2026-06-01",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	view := decode[converters.ProjectView](t, rec)
	assert.Equal(t, "Thesis", view.Title)
	assert.Equal(t, "todo", view.State)
	assert.Equal(t, "2026-06-01", view.Deadline)
	assert.Equal(t, "/api/v1/projects/"+view.ID, rec.Header().Get("Location"))

	assert.Equal(t, 1, application.ProjectService.Count(context.Background(), models.StateToDo))
}

func TestCreateProject_Errors(t *testing.T) {
	s, _ := setupServer(t)

	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantField  string
	}{
		{"malformed json", `{"title":`, http.StatusBadRequest, ""},
		{"unknown field", `{"name":"x"}`, http.StatusBadRequest, ""},
		{"deadline in past", CreateProjectRequest{Deadline: "2026-01-01"}, http.StatusUnprocessableEntity, "deadline"},
		{"bad deadline", CreateProjectRequest{Deadline: "soon"}, http.StatusUnprocessableEntity, "deadline"},
		{"description too long", CreateProjectRequest{Description: strings.Repeat("x", models.DescriptionLimit+1)}, http.StatusUnprocessableEntity, "description"},
		{"bad state", CreateProjectRequest{State: "archived"}, http.StatusUnprocessableEntity, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/api/v1/projects", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			problem := decode[ErrorResponse](t, rec)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantField, problem.Field)
		})
	}
}

func TestGetUpdateDeleteProject(t *testing.T) {
	s, application := setupServer(t)
	created := createProject(t, s, CreateProjectRequest{Title: "Garden", Deadline: "2026-07-01"})
	path := "/api/v1/projects/" + created.ID

	t.Run("get", func(t *testing.T) {
		rec := do(t, s, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, created.ID, decode[converters.ProjectView](t, rec).ID)
	})

	t.Run("patch changes only given fields", func(t *testing.T) {
		title := "Vegetable garden"
		rec := do(t, s, http.MethodPatch, path, UpdateProjectRequest{Title: &title})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		view := decode[converters.ProjectView](t, rec)
		assert.Equal(t, "Vegetable garden", view.Title)
		assert.Equal(t, "2026-07-01", view.Deadline)
		assert.Equal(t, "todo", view.State)
	})

	t.Run("patch with past deadline", func(t *testing.T) {
		past := "2025-12-31"
		rec := do(t, s, http.MethodPatch, path, UpdateProjectRequest{Deadline: &past})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := do(t, s, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		_, err := application.ProjectService.Get(context.Background(), uuid.MustParse(created.ID))
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("gone after delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodGet, path, nil).Code)
		assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodDelete, path, nil).Code)
		title := "x"
		assert.Equal(t, http.StatusNotFound, do(t, s, http.MethodPatch, path, UpdateProjectRequest{Title: &title}).Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, do(t, s, http.MethodGet, "/api/v1/projects/42", nil).Code)
	})
}

func TestMoveProject(t *testing.T) {
	s, _ := setupServer(t)
	first := createProject(t, s, CreateProjectRequest{Title: "first"})
	second := createProject(t, s, CreateProjectRequest{Title: "second", State: "doing"})

	rec := do(t, s, http.MethodPost, "/api/v1/projects/"+first.ID+"/move", MoveProjectRequest{State: "doing"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "doing", decode[converters.ProjectView](t, rec).State)

	rec = do(t, s, http.MethodGet, "/api/v1/states/doing/projects", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	column := decode[converters.ColumnView](t, rec)
	require.Len(t, column.Projects, 2)
	assert.Equal(t, second.ID, column.Projects[0].ID)
	assert.Equal(t, first.ID, column.Projects[1].ID, "moved project is appended")

	t.Run("same state is a no-op", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/projects/"+first.ID+"/move", MoveProjectRequest{State: "doing"})
		require.Equal(t, http.StatusOK, rec.Code)

		column := decode[converters.ColumnView](t, do(t, s, http.MethodGet, "/api/v1/states/doing/projects", nil))
		assert.Equal(t, first.ID, column.Projects[1].ID)
	})

	t.Run("invalid state", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/projects/"+first.ID+"/move", MoveProjectRequest{State: "later"})
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("unknown project", func(t *testing.T) {
		rec := do(t, s, http.MethodPost, "/api/v1/projects/"+uuid.NewString()+"/move", MoveProjectRequest{State: "done"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ============================================================================
// BOARD ROUTES
// ============================================================================

func TestGetBoard(t *testing.T) {
	s, application := setupServer(t)
	createProject(t, s, CreateProjectRequest{Title: "a"})
	late := createProject(t, s, CreateProjectRequest{Title: "late", State: "doing"})

	// Push the late project's deadline into the past behind the editor's back
	_, err := application.Store().Save("late", "", testutil.FixedNow.Add(-time.Hour), ptr(uuid.MustParse(late.ID)))
	require.NoError(t, err)

	rec := do(t, s, http.MethodGet, "/api/v1/board", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	board := decode[converters.BoardView](t, rec)
	require.Len(t, board.Columns, 3)
	assert.Equal(t, []string{"todo", "doing", "done"},
		[]string{board.Columns[0].State, board.Columns[1].State, board.Columns[2].State})
	assert.Equal(t, 1, board.Columns[0].Count)
	assert.True(t, board.Columns[1].Projects[0].Overdue)
	assert.Empty(t, board.Columns[2].Projects)
}

func TestListState_InvalidState(t *testing.T) {
	s, _ := setupServer(t)
	assert.Equal(t, http.StatusUnprocessableEntity, do(t, s, http.MethodGet, "/api/v1/states/someday/projects", nil).Code)
}

func TestHealth(t *testing.T) {
	s, _ := setupServer(t)
	createProject(t, s, CreateProjectRequest{Title: "a", State: "done"})

	rec := do(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	health := decode[HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, map[string]int{"todo": 0, "doing": 0, "done": 1}, health.Projects)
}

// ============================================================================
// LIFECYCLE
// ============================================================================

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := setupServer(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(ctx, l) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + l.Addr().String() + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func ptr[T any](v T) *T {
	return &v
}
