package ui

import "ciftify/internal/tools"

// Bubble Tea messages
type versionMsg struct {
	id     tools.ToolID
	report string
	err    error
}

type provenanceMsg struct{ report string }

type sysinfoMsg struct{ report string }
