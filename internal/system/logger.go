package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared logger for diagnostics output. It prints to
// stderr with timestamps so degraded reports are traceable in pipeline
// logs.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
