package style

import "github.com/charmbracelet/lipgloss"

var (
	ChevronIcon = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).SetString("> ").Bold(true)
)
