// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projectmanager/internal/config"
	"github.com/thenoetrevino/projectmanager/internal/tui/theme"
)

// Fixed geometry of the board. Cards are a fixed size so columns line up.
const (
	ColumnWidth    = 40
	CardWidth      = 36
	CardHeight     = 6
	cardTextWidth  = CardWidth - 4
	descPreviewLen = 2
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of the three state columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of individual projects as cards
	CardStyle lipgloss.Style

	// TitleStyle defines the appearance of column headers
	TitleStyle lipgloss.Style

	// SubtleStyle is used for placeholders and deadlines
	SubtleStyle lipgloss.Style

	// OverdueStyle renders deadlines that have passed
	OverdueStyle lipgloss.Style

	// CreateBoxStyle frames the editor for a new project (green border)
	CreateBoxStyle lipgloss.Style

	// EditBoxStyle frames the editor for an existing project (blue border)
	EditBoxStyle lipgloss.Style

	// DeleteConfirmBoxStyle frames the delete confirmation (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// MenuBoxStyle frames the action menu
	MenuBoxStyle lipgloss.Style

	// MenuItemStyle and MenuCursorStyle render action menu rows
	MenuItemStyle   lipgloss.Style
	MenuCursorStyle lipgloss.Style

	// HelpBoxStyle frames the help screen
	HelpBoxStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// ErrorBannerStyle renders error notifications in the status bar
	ErrorBannerStyle lipgloss.Style
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors config.ColorScheme) {
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth)

	CardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	OverdueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Overdue)).
		Bold(true)

	CreateBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Create)).
		Padding(1, 2)

	EditBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Delete)).
		Padding(1)

	MenuBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		PaddingLeft(2)

	MenuCursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Edit)).
		Padding(1, 2)

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Align(lipgloss.Center)

	StatusBarStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(colors.StatusBarBg)).
		Foreground(lipgloss.Color(colors.StatusBarText))

	ErrorBannerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Bold(true).
		Padding(0, 1)
}
