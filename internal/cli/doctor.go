package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ciftify/internal/env"
	"ciftify/internal/system"
	"ciftify/internal/tools"
)

type doctorItem struct {
	Tool    string `json:"tool"`
	Present bool   `json:"present"`
	Report  string `json:"report,omitempty"`
	Error   string `json:"error,omitempty"`
}

type doctorReport struct {
	Tools   []doctorItem `json:"tools"`
	Ciftify string       `json:"ciftify"`
	System  string       `json:"system"`
	Missing int          `json:"missing"`
}

var doctorJSON bool

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output JSON report")
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check external toolchains and print all version reports",
	Long: "Probes wb_command, FSL and FreeSurfer on PATH, reports their versions,\n" +
		"and appends ciftify provenance and host system identity.",
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := env.Default()
		reporter := tools.New(resolver)
		intro := system.NewIntrospector(resolver)

		rep := doctorReport{
			Ciftify: intro.Report(cmd.Context(), ""),
			System:  system.Info(),
		}
		for _, t := range tools.All {
			item := doctorItem{Tool: t.Name}
			out, err := reporter.Version(cmd.Context(), t)
			var missing *tools.MissingToolError
			switch {
			case errors.As(err, &missing):
				item.Error = missing.Error()
				rep.Missing++
			case err != nil:
				item.Error = err.Error()
				rep.Missing++
			default:
				item.Present = true
				item.Report = out
			}
			rep.Tools = append(rep.Tools, item)
		}

		if doctorJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			printDoctorText(rep)
		}

		if rep.Missing > 0 {
			return fmt.Errorf("doctor failed: %d missing tool(s)", rep.Missing)
		}
		return nil
	},
}

func printDoctorText(rep doctorReport) {
	for _, item := range rep.Tools {
		if !item.Present {
			fmt.Printf("%s %s  %s\n", failStyle.Render("MISSING"), item.Tool, dimStyle.Render(item.Error))
			continue
		}
		fmt.Printf("%s %s\n", okStyle.Render("OK"), firstLine(item.Report))
		for _, l := range restLines(item.Report) {
			fmt.Println(l)
		}
	}
	fmt.Println()
	fmt.Println(rep.Ciftify)
	fmt.Println()
	fmt.Println(rep.System)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func restLines(s string) []string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.Split(s[i+1:], "\n")
	}
	return nil
}
