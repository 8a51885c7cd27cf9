package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iliyamo/bmi-calculator/internal/bmi"
)

// Styles holds the lipgloss styles of the form.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Help    lipgloss.Style

	// Result tiers
	Info    lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	box := lipgloss.NewStyle().Padding(0, 1).MarginTop(1)
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Focused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),

		Info:    box.Foreground(lipgloss.Color("39")),  // Blue
		Success: box.Foreground(lipgloss.Color("71")),  // Muted green
		Warning: box.Foreground(lipgloss.Color("179")), // Muted yellow
		Error:   box.Foreground(lipgloss.Color("167")), // Muted red
	}
}

// For returns the style of a severity tier.
func (s Styles) For(sev bmi.Severity) lipgloss.Style {
	switch sev {
	case bmi.SeverityInfo:
		return s.Info
	case bmi.SeveritySuccess:
		return s.Success
	case bmi.SeverityWarning:
		return s.Warning
	}
	return s.Error
}
