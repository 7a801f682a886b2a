package config

import "fmt"

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Projects
	AddProject       string `yaml:"add_project"`
	EditProject      string `yaml:"edit_project"`
	DeleteProject    string `yaml:"delete_project"`
	ActionMenu       string `yaml:"action_menu"`
	MoveProjectLeft  string `yaml:"move_project_left"`
	MoveProjectRight string `yaml:"move_project_right"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Navigation
	PrevColumn  string `yaml:"prev_column"`
	NextColumn  string `yaml:"next_column"`
	PrevProject string `yaml:"prev_project"`
	NextProject string `yaml:"next_project"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		AddProject:       "a",
		EditProject:      "e",
		DeleteProject:    "d",
		ActionMenu:       "m",
		MoveProjectLeft:  "H",
		MoveProjectRight: "L",

		SaveForm: "ctrl+s",

		PrevColumn:  "h",
		NextColumn:  "l",
		PrevProject: "k",
		NextProject: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// bindings pairs every board key with its yaml name.
func (k *KeyMappings) bindings() []struct {
	name string
	key  *string
} {
	return []struct {
		name string
		key  *string
	}{
		{"add_project", &k.AddProject},
		{"edit_project", &k.EditProject},
		{"delete_project", &k.DeleteProject},
		{"action_menu", &k.ActionMenu},
		{"move_project_left", &k.MoveProjectLeft},
		{"move_project_right", &k.MoveProjectRight},
		{"prev_column", &k.PrevColumn},
		{"next_column", &k.NextColumn},
		{"prev_project", &k.PrevProject},
		{"next_project", &k.NextProject},
		{"show_help", &k.ShowHelp},
		{"quit", &k.Quit},
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	mine, theirs := k.bindings(), defaults.bindings()
	for i := range mine {
		if *mine[i].key == "" {
			*mine[i].key = *theirs[i].key
		}
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
}

// Conflicts reports board keys bound to more than one action.
// The form save key is excluded since it is only active inside the editor.
func (k KeyMappings) Conflicts() []string {
	seen := make(map[string]string)
	var out []string
	for _, b := range k.bindings() {
		if prev, ok := seen[*b.key]; ok {
			out = append(out, fmt.Sprintf("%q is bound to both %s and %s", *b.key, prev, b.name))
			continue
		}
		seen[*b.key] = b.name
	}
	return out
}
