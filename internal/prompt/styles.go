package prompt

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e53935"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFC107"))
)

// Title renders a section heading.
func Title(s string) string { return titleStyle.Render(s) }

// Success renders a success banner.
func Success(s string) string { return successStyle.Render(s) }

// Warning renders a non-fatal warning.
func Warning(s string) string { return warnStyle.Render(s) }

// ErrorMsg renders a fatal error message.
func ErrorMsg(s string) string { return errorStyle.Render(s) }
