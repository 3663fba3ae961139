package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles used across the gallery chrome.
var (
	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)
