package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles for the menu screens.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Warning     lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	}
}

// MonochromeTheme drops colors for terminals without color support.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:       plain.Bold(true),
		Subtitle:    plain,
		ItemNormal:  plain,
		ItemActive:  plain.Reverse(true),
		Description: plain.Italic(true),
		Controls:    plain,
		Warning:     plain.Bold(true),
	}
}
