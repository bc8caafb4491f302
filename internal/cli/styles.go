package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)

	stateStyles = map[string]lipgloss.Style{
		// Healthy states
		"cached":   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"override": lipgloss.NewStyle().Foreground(lipgloss.Color("2")),

		// Needs attention
		"stale":   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"missing": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

		// Not extracted yet
		"pending": lipgloss.NewStyle().Faint(true),
	}
)

func stateStyle(state string) lipgloss.Style {
	if s, ok := stateStyles[state]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
