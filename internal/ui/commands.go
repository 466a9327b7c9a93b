package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"ciftify/internal/system"
	"ciftify/internal/tools"
)

// Commands
func checkAllCmd(rep *tools.Reporter) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(tools.All))
	for _, t := range tools.All {
		t := t
		cmds = append(cmds, func() tea.Msg {
			out, err := rep.Version(context.Background(), t)
			return versionMsg{id: t.ID, report: out, err: err}
		})
	}
	return tea.Batch(cmds...)
}

func provenanceCmd(in *system.Introspector) tea.Cmd {
	return func() tea.Msg {
		return provenanceMsg{report: in.Report(context.Background(), "")}
	}
}

func sysinfoCmd() tea.Cmd {
	return func() tea.Msg {
		return sysinfoMsg{report: system.Info()}
	}
}
