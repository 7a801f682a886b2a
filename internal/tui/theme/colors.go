// Package theme holds the raw color values the board renders with.
package theme

import "github.com/thenoetrevino/projectmanager/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Accent         string
	Subtle         string
	Normal         string
	Title          string
	Create         string
	Edit           string
	Delete         string
	ColumnBorder   string
	CardBorder     string
	SelectedBorder string
	Overdue        string
	ErrorFg        string
	StatusBarBg    string
	StatusBarText  string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Accent = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	SelectedBorder = colors.SelectedBorder
	Overdue = colors.Overdue
	ErrorFg = colors.ErrorFg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
