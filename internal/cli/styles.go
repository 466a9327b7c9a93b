package cli

import "github.com/charmbracelet/lipgloss"

// Vitesse Dark Soft accents, shared with the dashboard.
var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9375"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cb7676"))
	warnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e6cc77"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfbaaa"))
)
