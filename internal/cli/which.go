package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ciftify/internal/env"
)

func init() {
	rootCmd.AddCommand(whichCmd)
}

var whichCmd = &cobra.Command{
	Use:   "which <command>",
	Short: "Locate an external executable on PATH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, ok := env.Default().Locate(args[0])
		if !ok {
			return fmt.Errorf("%s not found", args[0])
		}
		fmt.Println(path)
		return nil
	},
}
