package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps configures the bottom bar
type StatusBarProps struct {
	Width int

	// Notification replaces the left text when set
	Notification string
	IsError      bool

	HelpKey string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: "pm - Project Board" or the current notification
// Right side: "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	leftText := "pm - Project Board"
	if props.Notification != "" {
		leftText = props.Notification
	}
	rightText := "press " + props.HelpKey + " for help"

	style := SubtleStyle
	leftStyle := style
	if props.IsError {
		leftStyle = ErrorBannerStyle
	}

	leftRendered := leftStyle.Render(leftText)
	rightRendered := style.Render(rightText)

	gapWidth := max(props.Width-lipgloss.Width(leftRendered)-lipgloss.Width(rightRendered), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, leftRendered, gap, rightRendered)
}
