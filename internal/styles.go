package internal

import "github.com/charmbracelet/lipgloss"

// Styles (exported)
var (
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // Blue
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))  // Green
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")) // Orange
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("141"))
)
