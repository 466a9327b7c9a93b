package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ciftify/internal/env"
)

func init() {
	rootCmd.AddCommand(pathsCmd)
}

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print resolved data and configuration directories",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := env.Default()
		printPath("scene templates", r.SceneTemplates(), true)
		printPath("ciftify data", r.GlobalData(), true)
		printPath("HCP S900 group average", r.HCPS900GroupAvg(), true)
		subjects, ok := r.SubjectsDir()
		printPath("SUBJECTS_DIR", subjects, ok)
		hcp, ok := r.HCPData()
		printPath("HCP_DATA", hcp, ok)
		return nil
	},
}

func printPath(label, value string, set bool) {
	if !set {
		fmt.Printf("%-24s %s\n", label, warnStyle.Render("(not set)"))
		return
	}
	fmt.Printf("%-24s %s\n", label, value)
}
