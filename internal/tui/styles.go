package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title  lipgloss.Style
	Normal lipgloss.Style
	Subtle lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Normal: lipgloss.NewStyle(),
		Subtle: lipgloss.NewStyle().Faint(true),
	}
}
