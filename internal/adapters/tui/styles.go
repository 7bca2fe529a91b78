package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jsamuelsen11/resistor-calculator/internal/ports"
)

// Palette.
var (
	colorText   = lipgloss.AdaptiveColor{Light: "#121212", Dark: "#E6E6E6"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#4A4A4A", Dark: "#A0A0A0"}
	colorAccent = lipgloss.AdaptiveColor{Light: "#005F9E", Dark: "#6EB6FF"}
	colorOK     = lipgloss.AdaptiveColor{Light: "#1B6F3A", Dark: "#5FD787"}
	colorError  = lipgloss.AdaptiveColor{Light: "#A02424", Dark: "#FF8787"}
)

// dialogWidth caps the frame so long prompts wrap instead of stretching.
const dialogWidth = 64

type styles struct {
	frame lipgloss.Style
	title lipgloss.Style
	body  lipgloss.Style
	help  lipgloss.Style
	input lipgloss.Style
}

func newStyles() styles {
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			Width(dialogWidth),
		title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		body:  lipgloss.NewStyle().Foreground(colorText),
		help:  lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
		input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1),
	}
}

// forSeverity recolors the frame and title to match the message severity.
func (s styles) forSeverity(sev ports.Severity) styles {
	color := colorOK
	if sev == ports.SeverityError {
		color = colorError
	}
	s.frame = s.frame.BorderForeground(color)
	s.title = s.title.Foreground(color)
	return s
}
