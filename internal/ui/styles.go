package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Panel       lipgloss.Style
	Prompt      lipgloss.Style
	Result      lipgloss.Style
	Selected    lipgloss.Style
	Highlight   lipgloss.Style
	LineNumber  lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Dim         lipgloss.Style
}

// NewStyles creates a new Styles instance; highlight and selection colors
// come from config
func NewStyles(highlightColor, selectionColor string) *Styles {
	return &Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Result:      lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Background(lipgloss.Color(selectionColor)).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color(highlightColor)).Bold(true),
		LineNumber:  lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Dim:         lipgloss.NewStyle().Faint(true),
	}
}
