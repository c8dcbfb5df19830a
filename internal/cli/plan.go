package cli

import (
	"github.com/spf13/cobra"

	"github.com/aaxis-ai/reportrunner/internal/catalog"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the generation breakdown without generating anything",
	RunE:  runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	tasks, err := catalog.Build(catalog.DefaultTables())
	if err != nil {
		return err
	}
	printBreakdown(cmd.OutOrStdout(), tasks)
	return nil
}
