package output

import "github.com/charmbracelet/lipgloss"

// Styles for echoed command streams and harness notices.
var (
	stdoutColor = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	stderrColor = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)
