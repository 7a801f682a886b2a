package forms

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projectmanager/internal/tui/theme"
)

// TextArea is a multi-line text input field with a character counter
type TextArea struct {
	key       string
	title     string
	charLimit int
	err       string
	textarea  textarea.Model
}

// NewTextArea creates a new text area field prefilled with value
func NewTextArea(key, title, placeholder, value string, charLimit int) *TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = charLimit
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	if value != "" {
		ta.SetValue(value)
	}

	return &TextArea{
		key:       key,
		title:     title,
		charLimit: charLimit,
		textarea:  ta,
	}
}

// Update handles messages
func (t *TextArea) Update(msg tea.Msg) (Field, tea.Cmd) {
	var cmd tea.Cmd
	t.textarea, cmd = t.textarea.Update(msg)
	return t, cmd
}

// View renders the text area
func (t *TextArea) View() string {
	return fieldTitle(t.title, t.textarea.Focused()) + "\n" +
		t.textarea.View() + "\n" +
		t.counter() +
		fieldError(t.err)
}

// counter renders "n/limit", empty when the field has no limit
func (t *TextArea) counter() string {
	if t.charLimit <= 0 {
		return ""
	}
	n := utf8.RuneCountInString(t.textarea.Value())
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("%d/%d", n, t.charLimit))
}

// SetWidth resizes the text area
func (t *TextArea) SetWidth(w int) {
	t.textarea.SetWidth(w)
}

// Focus focuses the text area
func (t *TextArea) Focus() tea.Cmd {
	return t.textarea.Focus()
}

// Blur removes focus
func (t *TextArea) Blur() {
	t.textarea.Blur()
}

// Focused returns whether the textarea is focused
func (t *TextArea) Focused() bool {
	return t.textarea.Focused()
}

// Key returns the field key
func (t *TextArea) Key() string {
	return t.key
}

// Value returns the current value
func (t *TextArea) Value() string {
	return t.textarea.Value()
}

// SetValue replaces the current value
func (t *TextArea) SetValue(v string) {
	t.textarea.SetValue(v)
}

// SetError sets the inline error message
func (t *TextArea) SetError(msg string) {
	t.err = msg
}

// Error returns the inline error message
func (t *TextArea) Error() string {
	return t.err
}
