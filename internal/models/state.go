package models

import (
	"fmt"
	"strings"
)

// State is the column a project lives in on the board
type State int

const (
	StateToDo State = iota
	StateDoing
	StateDone
)

// States returns every state in board order (left to right)
func States() []State {
	return []State{StateToDo, StateDoing, StateDone}
}

// Valid reports whether s is one of the three board states
func (s State) Valid() bool {
	return s >= StateToDo && s <= StateDone
}

// String returns the machine name used in flags, JSON and the database
func (s State) String() string {
	switch s {
	case StateToDo:
		return "todo"
	case StateDoing:
		return "doing"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Title returns the column header text
func (s State) Title() string {
	switch s {
	case StateToDo:
		return "TODO"
	case StateDoing:
		return "DOING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// MoveLabel is the action menu text for moving a project into s
func (s State) MoveLabel() string {
	return "Move to " + s.Title()
}

// Others returns the two states a project in s can be moved to, in board order
func (s State) Others() []State {
	others := make([]State, 0, 2)
	for _, candidate := range States() {
		if candidate != s {
			others = append(others, candidate)
		}
	}
	return others
}

// ParseState converts user input into a State.
// Accepts the machine names, the column titles and a few common spellings.
func ParseState(input string) (State, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)

	switch normalized {
	case "todo":
		return StateToDo, nil
	case "doing", "inprogress":
		return StateDoing, nil
	case "done":
		return StateDone, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidState, input)
}

// MarshalText lets State appear as its machine name in JSON and YAML
func (s State) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidState, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses a machine name or column title
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
