package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	curveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	growingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	quietStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
)
