package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ciftify/internal/tools"
)

// Vitesse Dark Soft accents, matching the CLI output styles.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9375"))
	okStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4d9375"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cb7676"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#bfbaaa"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5eaab5"))
)

func (m model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(titleStyle.Render("ciftify environment"))
	b.WriteString("\n\n")

	for _, t := range tools.All {
		res, done := m.results[t.ID]
		switch {
		case !done:
			b.WriteString("  " + m.sp.View() + " " + t.Name + "\n")
		case res.err != nil:
			b.WriteString("  " + failStyle.Render("✗") + " " + t.Name + "  " + dimStyle.Render(res.err.Error()) + "\n")
		default:
			b.WriteString("  " + okStyle.Render("✓") + " " + indentBlock(res.report) + "\n")
		}
	}

	if m.provenance != "" {
		b.WriteString("\n  " + indentBlock(m.provenance) + "\n")
	}
	if m.sysinfo != "" {
		b.WriteString("\n  " + indentBlock(m.sysinfo) + "\n")
	}
	b.WriteString("\n  " + dimStyle.Render("r re-check · q quit") + "\n")
	return b.String()
}

// indentBlock shifts a multi-line report so its continuation lines stay
// aligned under the dashboard's two-space gutter.
func indentBlock(s string) string {
	return strings.ReplaceAll(s, "\n", "\n  ")
}
