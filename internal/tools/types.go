package tools

import "fmt"

// Tool identifiers
type ToolID string

const (
	ToolWorkbench  ToolID = "workbench"
	ToolFSL        ToolID = "fsl"
	ToolFreesurfer ToolID = "freesurfer"
)

// Tool describes one external toolchain the pipeline depends on.
type Tool struct {
	ID   ToolID
	Name string // report header, e.g. "wb_command", "FSL"

	Command string // executable probed on PATH
	BinDir  bool   // report the containing bin/ folder instead of the binary
}

// MissingToolError is the hard dependency failure raised when a version
// report is requested for a tool that cannot be found. The message is the
// user-facing remediation text.
type MissingToolError struct {
	Tool Tool
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s not found. Please check that it is installed.", e.Tool.Name)
}
