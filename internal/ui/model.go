package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"ciftify/internal/env"
	"ciftify/internal/system"
	"ciftify/internal/tools"
)

type checkResult struct {
	report string
	err    error
}

// Model for the doctor dashboard
type model struct {
	reporter *tools.Reporter
	intro    *system.Introspector

	results    map[tools.ToolID]checkResult
	pending    int
	provenance string
	sysinfo    string

	sp       spinner.Model
	quitting bool
	width    int
}

func initialModel() model {
	resolver := env.Default()
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	return model{
		reporter: tools.New(resolver),
		intro:    system.NewIntrospector(resolver),
		results:  make(map[tools.ToolID]checkResult, len(tools.All)),
		pending:  len(tools.All),
		sp:       sp,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.sp.Tick, checkAllCmd(m.reporter), provenanceCmd(m.intro), sysinfoCmd())
}

// Start runs the dashboard and returns any error.
func Start() error {
	if _, err := tea.NewProgram(initialModel(), tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
