// Package executor runs the task catalog against a generation backend
// with a bounded number of calls in flight. Failures never cross task
// boundaries: every task yields exactly one result, error-tagged when
// rendering or generation fails, and the batch always runs to completion.
package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/aaxis-ai/reportrunner/internal/domain"
	"github.com/aaxis-ai/reportrunner/internal/metrics"
	"github.com/aaxis-ai/reportrunner/internal/prompt"
)

// Config configures the executor.
type Config struct {
	MaxConcurrent int64 // generation calls in flight (default 10)
	ProgressEvery int   // notify observer every N completions (default 10)
}

// DefaultConfig returns production executor defaults.
func DefaultConfig() Config {
	return Config{MaxConcurrent: 10, ProgressEvery: 10}
}

// ProgressFunc observes batch progress: completed results so far out of
// the total. Advisory only — it never affects results.
type ProgressFunc func(completed, total int)

// Executor fans tasks out over a Generator. The generator handle and the
// semaphore are shared read-only across all task executions; each task
// owns its params and its result exclusively.
type Executor struct {
	gen        domain.Generator
	system     string
	cfg        Config
	onProgress ProgressFunc
}

// New creates an executor. system is the shared instruction block sent
// with every call.
func New(gen domain.Generator, system string, cfg Config) *Executor {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = DefaultConfig().MaxConcurrent
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = DefaultConfig().ProgressEvery
	}
	return &Executor{gen: gen, system: system, cfg: cfg}
}

// OnProgress registers the progress observer. Called from the Run
// goroutine only, so the callback needs no synchronization.
func (e *Executor) OnProgress(fn ProgressFunc) { e.onProgress = fn }

// Run executes every task and returns exactly len(tasks) results, in
// task order. All launched goroutines are joined before Run returns;
// result order is an artifact of the fixed result slots, completion
// order is not observable to callers.
func (e *Executor) Run(ctx context.Context, tasks []domain.Task) []domain.Result {
	results := make([]domain.Result, len(tasks))
	sem := semaphore.NewWeighted(e.cfg.MaxConcurrent)
	completions := make(chan struct{}, len(tasks))

	var wg sync.WaitGroup
	for i := range tasks {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { completions <- struct{}{} }()

			if err := sem.Acquire(ctx, 1); err != nil {
				results[i] = errorResult(tasks[i], err.Error())
				return
			}
			defer sem.Release(1)

			results[i] = e.execute(ctx, tasks[i])
		}(i)
	}

	// Progress accounting happens here, on the caller's goroutine.
	for done := 1; done <= len(tasks); done++ {
		<-completions
		if e.onProgress != nil && done%e.cfg.ProgressEvery == 0 {
			e.onProgress(done, len(tasks))
		}
	}
	wg.Wait()

	return results
}

// execute renders and generates one task. Every failure path — missing
// parameter, backend error, even a generator panic — collapses into an
// error-tagged result for this task alone.
func (e *Executor) execute(ctx context.Context, task domain.Task) (res domain.Result) {
	defer func() {
		if r := recover(); r != nil {
			metrics.BlocksFailed.WithLabelValues(string(task.BlockType), "panic").Inc()
			res = errorResult(task, fmt.Sprintf("panic: %v", r))
		}
	}()

	rendered, err := prompt.Render(task.BlockType, task.Params)
	if err != nil {
		metrics.BlocksFailed.WithLabelValues(string(task.BlockType), "render").Inc()
		if errors.Is(err, domain.ErrMissingParam) || errors.Is(err, domain.ErrUnknownBlockType) {
			return errorResult(task, err.Error())
		}
		return errorResult(task, fmt.Sprintf("render template: %v", err))
	}

	metrics.WorkersActive.Inc()
	start := time.Now()
	gen, err := e.gen.Generate(ctx, domain.GenerateRequest{Prompt: rendered, System: e.system})
	metrics.GenerationLatency.Observe(time.Since(start).Seconds())
	metrics.WorkersActive.Dec()

	if err != nil {
		metrics.BlocksFailed.WithLabelValues(string(task.BlockType), "generate").Inc()
		return errorResult(task, err.Error())
	}

	metrics.BlocksGenerated.WithLabelValues(string(task.BlockType)).Inc()
	metrics.OutputTokens.Add(float64(gen.OutputTokens))

	return domain.Result{
		Key:          task.OutputKey,
		Content:      gen.Text,
		BlockType:    task.BlockType,
		Params:       task.Params,
		Bucket:       task.Bucket,
		OutputTokens: gen.OutputTokens,
	}
}

// errorResult converts a per-task failure into its error-tagged result.
// Token count is zero on error; the message lands in the bucket where
// the content would have appeared, prefixed so it is visible in place.
func errorResult(task domain.Task, msg string) domain.Result {
	return domain.Result{
		Key:       task.OutputKey,
		Content:   "ERROR: " + msg,
		IsError:   true,
		BlockType: task.BlockType,
		Params:    task.Params,
		Bucket:    task.Bucket,
	}
}
