package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ciftify/internal/system"
)

func init() {
	rootCmd.AddCommand(sysinfoCmd)
}

var sysinfoCmd = &cobra.Command{
	Use:   "sysinfo",
	Short: "Print host system identity",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(system.Info())
	},
}
