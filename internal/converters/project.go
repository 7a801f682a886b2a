// Package converters turns board models into the shapes the CLI and the HTTP API emit
package converters

import (
	"time"

	"github.com/thenoetrevino/projectmanager/internal/models"
	projectservice "github.com/thenoetrevino/projectmanager/internal/services/project"
)

// ProjectView is the wire form of a project
type ProjectView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    string    `json:"deadline"`
	State       string    `json:"state"`
	Overdue     bool      `json:"overdue"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetID returns the project identifier, used by quiet output
func (v ProjectView) GetID() string {
	return v.ID
}

// ColumnView is one state's list with its header counter
type ColumnView struct {
	State        string        `json:"state"`
	Title        string        `json:"title"`
	Count        int           `json:"count"`
	DisplayCount string        `json:"display_count"`
	Projects     []ProjectView `json:"projects"`
}

// BoardView holds the three columns in board order
type BoardView struct {
	Columns []ColumnView `json:"columns"`
	TakenAt time.Time    `json:"taken_at"`
}

// ProjectToView converts a project, evaluating overdue at now
func ProjectToView(p models.Project, now time.Time) ProjectView {
	return ProjectView{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Deadline:    p.Deadline.Format(models.DeadlineLayout),
		State:       p.State.String(),
		Overdue:     p.IsOverdue(now),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectsToViews converts a state list in order
func ProjectsToViews(projects []models.Project, now time.Time) []ProjectView {
	views := make([]ProjectView, len(projects))
	for i, p := range projects {
		views[i] = ProjectToView(p, now)
	}
	return views
}

// ColumnToView converts a board column. Overdue flags come from the column itself.
func ColumnToView(c projectservice.Column) ColumnView {
	views := make([]ProjectView, len(c.Projects))
	for i, p := range c.Projects {
		views[i] = ProjectToView(p, time.Time{})
		if i < len(c.Overdue) {
			views[i].Overdue = c.Overdue[i]
		}
	}
	return ColumnView{
		State:        c.State.String(),
		Title:        c.State.Title(),
		Count:        c.Count(),
		DisplayCount: models.FormatCount(c.Count()),
		Projects:     views,
	}
}

// BoardToView converts a full board snapshot
func BoardToView(b projectservice.Board) BoardView {
	view := BoardView{TakenAt: b.TakenAt, Columns: make([]ColumnView, 0, len(b.Columns))}
	for _, c := range b.Columns {
		view.Columns = append(view.Columns, ColumnToView(c))
	}
	return view
}
