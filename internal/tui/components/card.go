package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/thenoetrevino/projectmanager/internal/models"
	"github.com/thenoetrevino/projectmanager/internal/tui/theme"
)

// RenderCard renders a single project as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Title}             ┃
//	┃ {description line1} ┃
//	┃ {description line2} ┃
//	┃ due {YYYY-MM-DD}    ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// The card has a fixed width and height. Overdue deadlines render in the overdue color.
func RenderCard(project models.Project, overdue bool, selected bool) string {
	texts := project.Texts()

	content := strings.Join([]string{
		renderCardTitle(texts.Title, project.Title == ""),
		renderDescriptionPreview(texts.Description, project.Description == ""),
		renderDeadline(texts.Deadline, overdue),
	}, "\n")

	style := CardStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	return style.Render(content)
}

func renderCardTitle(title string, placeholder bool) string {
	title = truncate(title, cardTextWidth)
	if placeholder {
		return SubtleStyle.Italic(true).Render(title)
	}
	return lipgloss.NewStyle().Bold(true).Render(title)
}

// renderDescriptionPreview word-wraps the description and keeps the first lines.
// A cut preview ends with an ellipsis.
func renderDescriptionPreview(description string, placeholder bool) string {
	lines := DescriptionPreview(description, cardTextWidth, descPreviewLen)
	preview := strings.Join(lines, "\n")
	if placeholder {
		return SubtleStyle.Italic(true).Render(preview)
	}
	return preview
}

// DescriptionPreview wraps text at width and returns exactly maxLines lines,
// padding with empty lines or cutting with a trailing ellipsis.
func DescriptionPreview(text string, width, maxLines int) []string {
	flat := strings.Join(strings.Fields(text), " ")
	wrapped := strings.Split(wordwrap.String(flat, width), "\n")

	lines := make([]string, maxLines)
	for i := range lines {
		if i < len(wrapped) {
			lines[i] = truncate(wrapped[i], width)
		}
	}
	if len(wrapped) > maxLines && maxLines > 0 {
		last := []rune(lines[maxLines-1])
		if len(last) >= width {
			last = last[:width-1]
		}
		lines[maxLines-1] = string(last) + "…"
	}
	return lines
}

func renderDeadline(deadline string, overdue bool) string {
	if overdue {
		return OverdueStyle.Render("! due " + deadline)
	}
	return SubtleStyle.Render("due " + deadline)
}

// truncate cuts s to width runes, marking the cut with an ellipsis
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
