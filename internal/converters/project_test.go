package converters

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

var now = time.Date(2026, 5, 20, 9, 30, 0, 0, time.UTC)

func project(title string, state models.State, deadline time.Time) models.Project {
	return models.Project{
		ID:       uuid.New(),
		Title:    title,
		Deadline: deadline,
		State:    state,
	}
}

func TestProjectToView(t *testing.T) {
	p := project("Thesis", models.StateDoing, now.AddDate(0, 0, -1))

	view := ProjectToView(p, now)

	assert.Equal(t, p.ID.String(), view.ID)
	assert.Equal(t, p.ID.String(), view.GetID())
	assert.Equal(t, "Thesis", view.Title)
	assert.Equal(t, "2026-05-19", view.Deadline)
	assert.Equal(t, "doing", view.State)
	assert.True(t, view.Overdue)
}

func TestProjectToView_DoneNeverOverdue(t *testing.T) {
	p := project("Shipped", models.StateDone, now.AddDate(0, -1, 0))

	assert.False(t, ProjectToView(p, now).Overdue)
}

func TestBoardToView(t *testing.T) {
	many := make([]models.Project, 120)
	for i := range many {
		many[i] = project("p", models.StateToDo, now.AddDate(0, 0, 1))
	}
	late := project("late", models.StateDoing, now.AddDate(0, 0, -3))

	b := projectservice.Board{
		TakenAt: now,
		Columns: []projectservice.Column{
			{State: models.StateToDo, Projects: many, Overdue: make([]bool, len(many))},
			{State: models.StateDoing, Projects: []models.Project{late}, Overdue: []bool{true}},
			{State: models.StateDone},
		},
	}

	view := BoardToView(b)
	require.Len(t, view.Columns, 3)

	assert.Equal(t, "TODO", view.Columns[0].Title)
	assert.Equal(t, 120, view.Columns[0].Count)
	assert.Equal(t, "99+", view.Columns[0].DisplayCount)

	require.Len(t, view.Columns[1].Projects, 1)
	assert.True(t, view.Columns[1].Projects[0].Overdue)

	assert.Equal(t, "0", view.Columns[2].DisplayCount)
	assert.Empty(t, view.Columns[2].Projects)
	assert.Equal(t, now, view.TakenAt)
}
