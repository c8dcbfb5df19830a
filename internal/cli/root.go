// Package cli implements the ReportRunner command-line interface using
// Cobra. Each subcommand maps to one pipeline stage (plan, generate,
// serve).
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "reportrunner",
	Short: "ReportRunner — Batch report block generation",
	Long: `ReportRunner generates the full library of proof-of-value report
content blocks in one batch run and writes them as a bucketed JSON
document ready for report assembly.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
