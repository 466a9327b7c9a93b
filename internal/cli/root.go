package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ciftify/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "ciftify-env",
	Short: "ciftify-env – environment and dependency discovery for the ciftify pipeline",
	Long: "ciftify-env locates the external toolchains the ciftify pipeline depends on\n" +
		"(Connectome Workbench, FSL, FreeSurfer), resolves its data directories, and\n" +
		"prints version and provenance reports for reproducibility logging.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the dashboard
		return ui.Start()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
