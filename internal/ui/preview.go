package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const previewTitle = "Commit message"

// RenderPreview formats an assembled commit message for display before confirmation.
func RenderPreview(message string) string {
	return renderPreview(message, ColorEnabled(), TerminalWidth())
}

func renderPreview(message string, styled bool, width int) string {
	if !styled {
		return previewTitle + ":\n" + indent(message, "  ")
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(previewTitle)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1).
		MaxWidth(width)

	return lipgloss.JoinVertical(lipgloss.Left, title, box.Render(message))
}

// RenderSuccess formats the line printed after a commit lands.
func RenderSuccess(message string) string {
	return renderSuccess(message, ColorEnabled())
}

func renderSuccess(message string, styled bool) string {
	if !styled {
		return message
	}
	return lipgloss.NewStyle().Bold(true).Foreground(ColorSuccess).Render(message)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
