package components

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/projectmanager/internal/models"
)

var deadline = time.Date(2026, 5, 20, 23, 59, 59, 0, time.UTC)

func makeProjects(n int) []models.Project {
	projects := make([]models.Project, n)
	for i := range projects {
		projects[i] = models.Project{
			ID:       uuid.New(),
			Title:    fmt.Sprintf("Project %d", i),
			Deadline: deadline,
		}
	}
	return projects
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		state    models.State
		count    int
		wantText string
	}{
		{name: "empty column", state: models.StateToDo, count: 0, wantText: "TODO (0)"},
		{name: "single project", state: models.StateDoing, count: 1, wantText: "DOING (1)"},
		{name: "at the cap", state: models.StateDone, count: 99, wantText: "DONE (99)"},
		{name: "over the cap", state: models.StateDone, count: 100, wantText: "DONE (99+)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderColumnHeader(tt.state, tt.count), tt.wantText)
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	shown := renderScrollIndicator(true, "▲ more above")
	assert.Contains(t, shown, "more above")
	assert.True(t, strings.HasSuffix(shown, "\n"))

	assert.Equal(t, "\n", renderScrollIndicator(false, "▲ more above"))
}

func TestRenderColumn(t *testing.T) {
	t.Run("empty column shows a placeholder", func(t *testing.T) {
		out := RenderColumn(ColumnProps{State: models.StateDoing})
		assert.Contains(t, out, "DOING (0)")
		assert.Contains(t, out, "No projects")
	})

	t.Run("cards are drawn in order", func(t *testing.T) {
		out := RenderColumn(ColumnProps{State: models.StateToDo, Projects: makeProjects(3)})
		first := strings.Index(out, "Project 0")
		last := strings.Index(out, "Project 2")
		require.NotEqual(t, -1, first)
		assert.Greater(t, last, first)
	})

	t.Run("a short column scrolls", func(t *testing.T) {
		height := columnOverhead + 2*CardHeight
		out := RenderColumn(ColumnProps{
			State:        models.StateToDo,
			Projects:     makeProjects(5),
			Height:       height,
			ScrollOffset: 1,
		})
		assert.Contains(t, out, "more above")
		assert.Contains(t, out, "more below")
		assert.NotContains(t, out, "Project 0")
		assert.Contains(t, out, "Project 1")
		assert.Contains(t, out, "Project 2")
		assert.NotContains(t, out, "Project 3")
	})

	t.Run("overdue flags mark the deadline", func(t *testing.T) {
		out := RenderColumn(ColumnProps{
			State:    models.StateToDo,
			Projects: makeProjects(2),
			Overdue:  []bool{true, false},
		})
		assert.Equal(t, 1, strings.Count(out, "! due 2026-05-20"))
	})
}

func TestVisibleCards(t *testing.T) {
	assert.Equal(t, 1, VisibleCards(3), "at least one card is always shown")
	assert.Equal(t, 2, VisibleCards(columnOverhead+2*CardHeight))
	assert.Greater(t, VisibleCards(0), 1000, "auto height shows everything")
}
