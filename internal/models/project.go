package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a single card on the board.
// ID is minted once at creation and never changes, including across moves.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	State       State     `json:"state"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOverdue reports whether the deadline is strictly before now.
// Done projects are never overdue.
func (p Project) IsOverdue(now time.Time) bool {
	if p.State == StateDone {
		return false
	}
	return p.Deadline.Before(now)
}

// Texts returns the display strings for a card
func (p Project) Texts() ProjectTexts {
	texts := ProjectTexts{
		Title:       p.Title,
		Description: p.Description,
		Deadline:    p.Deadline.Format(DeadlineLayout),
	}
	if texts.Title == "" {
		texts.Title = UntitledPlaceholder
	}
	if texts.Description == "" {
		texts.Description = NoDescriptionPlaceholder
	}
	return texts
}

// ProjectTexts holds the strings a card displays
type ProjectTexts struct {
	Title       string
	Description string
	Deadline    string
}
