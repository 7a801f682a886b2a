package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, headers, the status bar)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // new project editor
	Edit   string `yaml:"edit"`   // existing project editor
	Delete string `yaml:"delete"` // delete confirmation

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	Overdue        string `yaml:"overdue"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // placeholders and deadlines
	Normal string `yaml:"normal"`

	// Inline error messages
	ErrorFg string `yaml:"error_fg"`

	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// Presets lists the names accepted by GetPreset.
func Presets() []string {
	return []string{"default", "monochrome", "wave"}
}

// GetPreset returns a preset color scheme by name.
// Unknown names fall back to the default preset.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(*preset, true)
}

// MergeFrom overrides colors with every non-empty value in other.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	c.fillFrom(other, false)
}

// fillFrom copies values from src. With onlyEmpty set, existing values are kept.
func (c *ColorScheme) fillFrom(src ColorScheme, onlyEmpty bool) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, src.Accent},
		{&c.Create, src.Create},
		{&c.Edit, src.Edit},
		{&c.Delete, src.Delete},
		{&c.ColumnBorder, src.ColumnBorder},
		{&c.CardBorder, src.CardBorder},
		{&c.SelectedBorder, src.SelectedBorder},
		{&c.Overdue, src.Overdue},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
		{&c.ErrorFg, src.ErrorFg},
		{&c.StatusBarBg, src.StatusBarBg},
		{&c.StatusBarText, src.StatusBarText},
	}
	for _, p := range pairs {
		if p.src == "" {
			continue
		}
		if onlyEmpty && *p.dst != "" {
			continue
		}
		*p.dst = p.src
	}
}
