package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	focusedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle      = lipgloss.NewStyle().Width(14)
	previewBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
