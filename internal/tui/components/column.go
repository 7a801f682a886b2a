package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/tui/theme"
)

// columnOverhead is the number of rows a column uses besides its cards:
// top border, header, top indicator, bottom indicator, bottom border.
const columnOverhead = 5

// ColumnProps is everything RenderColumn needs to draw one state list
type ColumnProps struct {
	State    models.State
	Projects []models.Project
	Overdue  []bool

	// Selected marks the column holding the cursor; SelectedIndex is ignored otherwise
	Selected      bool
	SelectedIndex int

	// Height is the total height of the column including borders (0 for auto)
	Height       int
	ScrollOffset int
}

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int) int {
	if height <= 0 {
		return 1 << 16
	}
	return max((height-columnOverhead)/CardHeight, 1)
}

// RenderColumn renders a complete column with its header counter and cards
//
// Layout:
//
//	{STATE} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	content := renderColumnHeader(props.State, len(props.Projects)) + "\n"

	if len(props.Projects) == 0 {
		emptyStyle := SubtleStyle.Italic(true).Padding(1, 0)
		content += emptyStyle.Render("No projects")
	} else {
		visible := VisibleCards(props.Height)
		offset := min(max(props.ScrollOffset, 0), len(props.Projects)-1)
		end := min(offset+visible, len(props.Projects))

		content += renderScrollIndicator(offset > 0, "▲ more above")

		var cards []string
		for i := offset; i < end; i++ {
			overdue := i < len(props.Overdue) && props.Overdue[i]
			selected := props.Selected && i == props.SelectedIndex
			cards = append(cards, RenderCard(props.Projects[i], overdue, selected))
		}
		content += strings.Join(cards, "\n")

		if end < len(props.Projects) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		style = style.Height(props.Height - 2)
	}
	return style.Render(content)
}

// renderColumnHeader renders "{TITLE} ({count})" with the counter capped at 99+
func renderColumnHeader(state models.State, count int) string {
	return TitleStyle.Render(fmt.Sprintf("%s (%s)", state.Title(), models.FormatCount(count)))
}

// renderScrollIndicator always takes one line so cards do not jump when scrolling
func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}
