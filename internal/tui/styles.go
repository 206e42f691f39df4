package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#7D56F4") // Purple accent
	secondaryColor = lipgloss.Color("#6C6C6C") // Gray for secondary text
	successColor   = lipgloss.Color("#73F59F") // Green for success
	errorColor     = lipgloss.Color("#FF6B6B") // Red for errors

	// titleStyle for headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// subtleStyle for hints/help text
	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// selectedStyle for the highlighted menu item
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// successStyle for confirmations
	successStyle = lipgloss.NewStyle().
			Foreground(successColor)

	// errorStyle for error messages
	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
