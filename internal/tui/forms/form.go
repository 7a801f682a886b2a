// Package forms is a small form toolkit on top of the bubbles text fields.
// It backs the project detail editor.
package forms

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projectmanager/internal/tui/theme"
)

// FormState represents the state of the form
type FormState int

const (
	StateInProgress FormState = iota
	StateCompleted
	StateAborted
)

// Field is the interface that all form fields must implement
type Field interface {
	// Update handles messages and updates the field
	Update(tea.Msg) (Field, tea.Cmd)

	// View renders the field
	View() string

	// Focus focuses the field
	Focus() tea.Cmd

	// Blur removes focus from the field
	Blur()

	// Focused returns whether the field is focused
	Focused() bool

	// Key returns the field's key (used to retrieve values)
	Key() string

	// Value returns the field's current text
	Value() string

	// SetError shows msg under the field; an empty msg clears it
	SetError(msg string)

	// Error returns the message set by SetError
	Error() string
}

// Form manages a collection of fields
type Form struct {
	fields       []Field
	focusedIndex int
	state        FormState
	submitKey    string
}

// NewForm creates a new form with the given fields.
// submitKey completes the form from any field; esc aborts it.
func NewForm(submitKey string, fields ...Field) *Form {
	return &Form{
		fields:       fields,
		focusedIndex: 0,
		state:        StateInProgress,
		submitKey:    submitKey,
	}
}

// Init initializes the form
func (f *Form) Init() tea.Cmd {
	if len(f.fields) > 0 {
		return f.fields[0].Focus()
	}
	return nil
}

// Update handles messages for the form
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if f.state != StateInProgress {
		return f, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "esc":
			f.state = StateAborted
			return f, nil

		case f.submitKey:
			f.state = StateCompleted
			return f, nil

		case "tab", "shift+tab":
			return f, f.handleTabNavigation(keyMsg.String() == "shift+tab")
		}
	}

	// Forward message to focused field
	if f.focusedIndex < len(f.fields) {
		var cmd tea.Cmd
		f.fields[f.focusedIndex], cmd = f.fields[f.focusedIndex].Update(msg)
		return f, cmd
	}

	return f, nil
}

// handleTabNavigation moves focus between fields
func (f *Form) handleTabNavigation(reverse bool) tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}

	f.fields[f.focusedIndex].Blur()

	if reverse {
		f.focusedIndex--
		if f.focusedIndex < 0 {
			f.focusedIndex = len(f.fields) - 1
		}
	} else {
		f.focusedIndex++
		if f.focusedIndex >= len(f.fields) {
			f.focusedIndex = 0
		}
	}

	return f.fields[f.focusedIndex].Focus()
}

// FocusKey moves focus to the field with key, used to point at a failed field
func (f *Form) FocusKey(key string) tea.Cmd {
	for i, field := range f.fields {
		if field.Key() != key {
			continue
		}
		f.fields[f.focusedIndex].Blur()
		f.focusedIndex = i
		return field.Focus()
	}
	return nil
}

// Focused returns the key of the focused field
func (f *Form) Focused() string {
	if f.focusedIndex < len(f.fields) {
		return f.fields[f.focusedIndex].Key()
	}
	return ""
}

// View renders the form
func (f *Form) View() string {
	views := make([]string, len(f.fields))
	for i, field := range f.fields {
		views[i] = field.View()
	}
	return strings.Join(views, "\n\n")
}

// State returns the current form state
func (f *Form) State() FormState {
	return f.state
}

// Resume puts a completed form back in progress, e.g. after a rejected save
func (f *Form) Resume() {
	f.state = StateInProgress
}

// Abort marks the form as aborted
func (f *Form) Abort() {
	f.state = StateAborted
}

// Get retrieves a field by key
func (f *Form) Get(key string) Field {
	for _, field := range f.fields {
		if field.Key() == key {
			return field
		}
	}
	return nil
}

// ClearErrors removes every inline error
func (f *Form) ClearErrors() {
	for _, field := range f.fields {
		field.SetError("")
	}
}

// HasErrors reports whether any field shows an inline error
func (f *Form) HasErrors() bool {
	for _, field := range f.fields {
		if field.Error() != "" {
			return true
		}
	}
	return false
}

func fieldTitle(title string, focused bool) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Subtle))
	if focused {
		style = style.Foreground(lipgloss.Color(theme.Accent))
	}
	return style.Render(title)
}

func fieldError(msg string) string {
	if msg == "" {
		return ""
	}
	return "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorFg)).Render("✕ "+msg)
}
