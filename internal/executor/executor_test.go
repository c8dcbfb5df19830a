package executor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aaxis-ai/reportrunner/internal/catalog"
	"github.com/aaxis-ai/reportrunner/internal/domain"
)

func buildTasks(t *testing.T) []domain.Task {
	t.Helper()
	tasks, err := catalog.Build(catalog.DefaultTables())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tasks
}

func TestRunOneResultPerTask(t *testing.T) {
	tasks := buildTasks(t)
	gen := &MockGenerator{Fn: func(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
		return &domain.Generation{Text: "content", OutputTokens: 100}, nil
	}}

	exec := New(gen, "system", DefaultConfig())
	results := exec.Run(context.Background(), tasks)

	if len(results) != len(tasks) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(tasks))
	}
	for i, res := range results {
		if res.Key != tasks[i].OutputKey {
			t.Fatalf("results[%d].Key = %q, want %q", i, res.Key, tasks[i].OutputKey)
		}
		if res.IsError {
			t.Errorf("results[%d] unexpectedly failed: %s", i, res.Content)
		}
		if res.OutputTokens != 100 {
			t.Errorf("results[%d].OutputTokens = %d, want 100", i, res.OutputTokens)
		}
	}
}

func TestRunFailureIsolation(t *testing.T) {
	tasks := buildTasks(t)
	failKey := "methodology_moderate"

	var rendered sync.Map
	gen := &MockGenerator{Fn: func(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
		rendered.Store(req.Prompt, true)
		if strings.Contains(req.Prompt, "Moderate risk tolerance") {
			return nil, errors.New("rate limited")
		}
		return &domain.Generation{Text: "ok", OutputTokens: 10}, nil
	}}

	exec := New(gen, "system", DefaultConfig())
	results := exec.Run(context.Background(), tasks)

	var failures int
	for _, res := range results {
		if !res.IsError {
			continue
		}
		failures++
		if res.Key != failKey {
			t.Errorf("unexpected failed key %q", res.Key)
		}
		if !strings.HasPrefix(res.Content, "ERROR: ") {
			t.Errorf("error content = %q, want ERROR: prefix", res.Content)
		}
		if res.OutputTokens != 0 {
			t.Errorf("error result OutputTokens = %d, want 0", res.OutputTokens)
		}
	}
	if failures != 1 {
		t.Errorf("failures = %d, want 1", failures)
	}
}

func TestRunPanicIsolation(t *testing.T) {
	tasks := buildTasks(t)[:20]
	gen := &MockGenerator{Fn: func(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
		if strings.Contains(req.Prompt, "VARIATION: 2 of 4") {
			panic("backend bug")
		}
		return &domain.Generation{Text: "ok", OutputTokens: 10}, nil
	}}

	exec := New(gen, "system", DefaultConfig())
	results := exec.Run(context.Background(), tasks)

	var panicked int
	for _, res := range results {
		if res.IsError && strings.Contains(res.Content, "panic") {
			panicked++
		}
	}
	if panicked != 3 { // one v2 summary per risk tolerance in the first 20 tasks
		t.Errorf("panicked results = %d, want 3", panicked)
	}
}

func TestRunConcurrencyBound(t *testing.T) {
	tasks := buildTasks(t)

	var inFlight, peak int64
	gen := &MockGenerator{Fn: func(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
		n := atomic.AddInt64(&inFlight, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if n <= p || atomic.CompareAndSwapInt64(&peak, p, n) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt64(&inFlight, -1)
		return &domain.Generation{Text: "ok", OutputTokens: 1}, nil
	}}

	exec := New(gen, "system", Config{MaxConcurrent: 3, ProgressEvery: 10})
	exec.Run(context.Background(), tasks)

	if got := atomic.LoadInt64(&peak); got > 3 {
		t.Errorf("peak in-flight = %d, want <= 3", got)
	}
}

func TestRunProgressCadence(t *testing.T) {
	tasks := buildTasks(t)[:25]
	gen := NewMockGenerator()

	exec := New(gen, "system", Config{MaxConcurrent: 5, ProgressEvery: 10})
	var calls [][2]int
	exec.OnProgress(func(completed, total int) {
		calls = append(calls, [2]int{completed, total})
	})
	exec.Run(context.Background(), tasks)

	want := [][2]int{{10, 25}, {20, 25}}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("progress call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestRunCancelledContext(t *testing.T) {
	tasks := buildTasks(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := New(NewMockGenerator(), "system", DefaultConfig())
	results := exec.Run(ctx, tasks)

	if len(results) != len(tasks) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(tasks))
	}
	for _, res := range results {
		if !res.IsError {
			t.Fatalf("result %q should be an error under a cancelled context", res.Key)
		}
	}
}
