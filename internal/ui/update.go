package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ciftify/internal/tools"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			// re-run all probes
			m.results = make(map[tools.ToolID]checkResult, len(tools.All))
			m.pending = len(tools.All)
			return m, tea.Batch(checkAllCmd(m.reporter), provenanceCmd(m.intro), sysinfoCmd())
		}
		return m, nil
	case versionMsg:
		m.results[msg.id] = checkResult{report: msg.report, err: msg.err}
		if m.pending > 0 {
			m.pending--
		}
		return m, nil
	case provenanceMsg:
		m.provenance = msg.report
		return m, nil
	case sysinfoMsg:
		m.sysinfo = msg.report
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.sp, cmd = m.sp.Update(msg)
		return m, cmd
	}
	return m, nil
}
