package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles for puzzle rendering.
type Theme struct {
	// Grid cell styles
	FixedTrack  lipgloss.Style // puzzle-authored track
	PlacedTrack lipgloss.Style // track laid by the solver
	Junction    lipgloss.Style
	Obstacle    lipgloss.Style
	Tunnel      lipgloss.Style
	EmptyCell   lipgloss.Style

	// Actors
	Train       lipgloss.Style
	Destination lipgloss.Style

	// HUD styles
	HUDTitle lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	HUDGood  lipgloss.Style
	HUDBad   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		FixedTrack:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")), // Light gray
		PlacedTrack: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
		Junction:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
		Obstacle:    lipgloss.NewStyle().Foreground(lipgloss.Color("88")),  // Dark red
		Tunnel:      lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
		EmptyCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")), // Dark gray

		Train:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Destination: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green

		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDGood:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		HUDBad:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.PlacedTrack = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Junction = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Obstacle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	theme.Tunnel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.Train = lipgloss.NewStyle().Reverse(true)
	theme.Destination = lipgloss.NewStyle().Underline(true)
	return theme
}
