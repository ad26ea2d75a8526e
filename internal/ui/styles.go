package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Palette shared by the preview box and the prompt theme.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#8E8E8E", Dark: "#6C6C6C"}
)

const (
	defaultWidth = 80
	edgeMargin   = 4
)

// StderrIsTerminal reports whether stderr is an interactive terminal.
func StderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled reports whether styled output should be written to stderr.
func ColorEnabled() bool {
	return StderrIsTerminal() && os.Getenv("NO_COLOR") == ""
}

// TerminalWidth returns the usable stderr width, or defaultWidth when unknown.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stderr.Fd()))
	if err != nil || width <= edgeMargin {
		return defaultWidth
	}
	return min(width-edgeMargin, defaultWidth)
}
