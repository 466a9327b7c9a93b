package tools

// External toolchains known to the pipeline.
var (
	Workbench = Tool{
		ID:      ToolWorkbench,
		Name:    "wb_command",
		Command: "wb_command",
	}
	FSL = Tool{
		ID:      ToolFSL,
		Name:    "FSL",
		Command: "fsl",
		BinDir:  true,
	}
	Freesurfer = Tool{
		ID:      ToolFreesurfer,
		Name:    "freesurfer",
		Command: "recon-all",
		BinDir:  true,
	}
)

var All = []Tool{Workbench, FSL, Freesurfer}
