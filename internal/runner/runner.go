// Package runner wires the pipeline together: catalog expansion, the
// concurrent executor, and bucketed aggregation, plus the terminal JSON
// write.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/aaxis-ai/reportrunner/internal/aggregate"
	"github.com/aaxis-ai/reportrunner/internal/catalog"
	"github.com/aaxis-ai/reportrunner/internal/domain"
	"github.com/aaxis-ai/reportrunner/internal/executor"
	"github.com/aaxis-ai/reportrunner/internal/prompt"
)

// Anthropic output pricing for the configured model family, dollars per
// million output tokens.
const costPerMillionTokens = 15.0

// Stats summarizes a completed run.
type Stats struct {
	Total       int
	Errors      int
	TotalTokens int
	Elapsed     time.Duration
}

// EstimatedCost returns the approximate output-token spend in dollars.
func (s Stats) EstimatedCost() float64 {
	return float64(s.TotalTokens) * costPerMillionTokens / 1e6
}

// Runner executes the full generation pipeline.
type Runner struct {
	gen        domain.Generator
	execCfg    executor.Config
	onProgress executor.ProgressFunc
}

// New creates a runner over the given generation backend.
func New(gen domain.Generator, cfg executor.Config) *Runner {
	return &Runner{gen: gen, execCfg: cfg}
}

// OnProgress registers a batch progress observer.
func (r *Runner) OnProgress(fn executor.ProgressFunc) { r.onProgress = fn }

// Run expands the catalog, generates every block, and returns the
// organized document with run stats.
func (r *Runner) Run(ctx context.Context) (*domain.Document, Stats, error) {
	tasks, err := catalog.Build(catalog.DefaultTables())
	if err != nil {
		return nil, Stats{}, fmt.Errorf("build catalog: %w", err)
	}
	return r.RunTasks(ctx, tasks)
}

// RunTasks generates the given tasks and organizes the results.
func (r *Runner) RunTasks(ctx context.Context, tasks []domain.Task) (*domain.Document, Stats, error) {
	runID := uuid.NewString()
	log.Printf("[runner] starting run %s: %d blocks", runID, len(tasks))

	exec := executor.New(r.gen, prompt.System, r.execCfg)
	if r.onProgress != nil {
		exec.OnProgress(r.onProgress)
	}

	start := time.Now()
	results := exec.Run(ctx, tasks)
	elapsed := time.Since(start)

	doc := aggregate.Organize(results, runID, time.Now())

	stats := Stats{
		Total:       doc.Metadata.TotalBlocks,
		Errors:      doc.Metadata.Errors,
		TotalTokens: doc.Metadata.TotalTokens,
		Elapsed:     elapsed,
	}
	log.Printf("[runner] run %s complete: %d blocks, %d errors, %d tokens in %s",
		runID, stats.Total, stats.Errors, stats.TotalTokens, elapsed.Round(time.Second))

	return doc, stats, nil
}

// WriteDocument serializes the document as indented JSON to path.
func WriteDocument(doc *domain.Document, path string) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ReadDocument loads a previously written document from path.
func ReadDocument(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := domain.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}
