package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ciftify/internal/env"
	"ciftify/internal/system"
)

func init() {
	rootCmd.AddCommand(provenanceCmd)
}

var provenanceCmd = &cobra.Command{
	Use:   "provenance [component]",
	Short: "Print install path and latest git commit, optionally for one component",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		component := ""
		if len(args) == 1 {
			component = args[0]
		}
		intro := system.NewIntrospector(env.Default())
		fmt.Println(intro.Report(cmd.Context(), component))
		return nil
	},
}
