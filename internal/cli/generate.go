package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aaxis-ai/reportrunner/internal/catalog"
	"github.com/aaxis-ai/reportrunner/internal/config"
	"github.com/aaxis-ai/reportrunner/internal/domain"
	"github.com/aaxis-ai/reportrunner/internal/executor"
	"github.com/aaxis-ai/reportrunner/internal/llm"
	"github.com/aaxis-ai/reportrunner/internal/runner"
)

func init() {
	generateCmd.Flags().BoolVarP(&generateYes, "yes", "y", false, "Skip the confirmation prompt")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file path (overrides config)")
	generateCmd.Flags().IntVarP(&generateConcurrency, "concurrency", "c", 0, "Max concurrent generation calls (overrides config)")
	generateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Use the mock backend instead of the live API")
	rootCmd.AddCommand(generateCmd)
}

var (
	generateYes         bool
	generateOutput      string
	generateConcurrency int
	generateDryRun      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate all report blocks and write the JSON document",
	Long: `Expand the task catalog, show the generation breakdown, and after
confirmation generate every block in parallel and write the bucketed
JSON document.`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if generateOutput != "" {
		cfg.Output.Path = generateOutput
	}
	if generateConcurrency > 0 {
		cfg.Generation.MaxConcurrent = generateConcurrency
	}

	tasks, err := catalog.Build(catalog.DefaultTables())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBreakdown(out, tasks)

	if !generateYes {
		fmt.Fprint(out, "\nProceed? (y/n): ")
		if !confirm(cmd.InOrStdin()) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	gen, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	r := runner.New(gen, executor.Config{
		MaxConcurrent: int64(cfg.Generation.MaxConcurrent),
		ProgressEvery: cfg.Generation.ProgressEvery,
	})
	r.OnProgress(func(completed, total int) {
		fmt.Fprintf(out, "  Completed %d/%d blocks...\n", completed, total)
	})

	fmt.Fprintln(out, "\nStarting generation...")
	fmt.Fprintf(out, "Max concurrent requests: %d\n", cfg.Generation.MaxConcurrent)

	doc, stats, err := r.RunTasks(context.Background(), tasks)
	if err != nil {
		return err
	}

	if err := runner.WriteDocument(doc, cfg.Output.Path); err != nil {
		return err
	}

	divider := strings.Repeat("=", 60)
	fmt.Fprintln(out)
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, "GENERATION COMPLETE")
	fmt.Fprintln(out, divider)
	fmt.Fprintf(out, "Total blocks generated: %d\n", stats.Total)
	fmt.Fprintf(out, "Errors: %d\n", stats.Errors)
	fmt.Fprintf(out, "Total output tokens: %d\n", stats.TotalTokens)
	fmt.Fprintf(out, "Estimated cost: $%.2f\n", stats.EstimatedCost())
	fmt.Fprintf(out, "Time elapsed: %.1f seconds\n", stats.Elapsed.Seconds())
	fmt.Fprintf(out, "Output saved to: %s\n", cfg.Output.Path)

	return nil
}

// buildGenerator picks the generation backend: the live API client, or
// the mock for dry runs.
func buildGenerator(cfg config.Config) (domain.Generator, error) {
	if generateDryRun {
		return executor.NewMockGenerator(), nil
	}

	key, err := cfg.APIKey()
	if err != nil {
		return nil, err
	}
	return llm.New(llm.Config{
		APIKey:    key,
		BaseURL:   cfg.API.BaseURL,
		Model:     cfg.Generation.Model,
		MaxTokens: cfg.Generation.MaxTokens,
	})
}

// printBreakdown prints the per-type task counts and run estimates.
func printBreakdown(out io.Writer, tasks []domain.Task) {
	divider := strings.Repeat("=", 60)
	fmt.Fprintln(out, divider)
	fmt.Fprintln(out, "ReportRunner — Report Block Generator")
	fmt.Fprintln(out, divider)

	counts := catalog.CountByType(tasks)
	fmt.Fprintln(out, "\nBlock types to generate:")
	for _, bt := range catalog.SortedTypes(counts) {
		fmt.Fprintf(out, "  - %s: %d\n", bt, counts[bt])
	}

	fmt.Fprintf(out, "\nTotal blocks: %d\n", len(tasks))
	fmt.Fprintln(out, "Estimated cost: ~$2-3")
	fmt.Fprintln(out, "Estimated time: ~2-3 minutes")
}
