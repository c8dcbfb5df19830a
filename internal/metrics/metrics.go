// Package metrics provides Prometheus metrics for the block generation
// pipeline — counters, gauges, and histograms for generation calls,
// failures, tokens, and in-flight workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Generation ─────────────────────────────────────────────────────────────

// BlocksGenerated tracks successfully generated blocks by block type.
var BlocksGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "reportrunner",
	Name:      "blocks_generated_total",
	Help:      "Total successfully generated blocks.",
}, []string{"block_type"})

// BlocksFailed tracks failed blocks by block type and failure stage.
var BlocksFailed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "reportrunner",
	Name:      "blocks_failed_total",
	Help:      "Total failed blocks.",
}, []string{"block_type", "reason"})

// GenerationLatency tracks the duration of one generation call in seconds.
var GenerationLatency = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "reportrunner",
	Name:      "generation_latency_seconds",
	Help:      "Generation call duration in seconds.",
	Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60},
})

// OutputTokens tracks billed output tokens across all calls.
var OutputTokens = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "reportrunner",
	Name:      "output_tokens_total",
	Help:      "Total output tokens consumed.",
})

// WorkersActive tracks generation calls currently in flight.
var WorkersActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "reportrunner",
	Name:      "workers_active",
	Help:      "Number of generation calls currently in flight.",
})
