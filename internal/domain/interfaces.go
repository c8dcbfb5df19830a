package domain

import "context"

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; the executor depends on them.

// GenerateRequest is one call to the text generation backend. System is
// reused verbatim across every call in a batch, so backends may mark it
// cacheable.
type GenerateRequest struct {
	Prompt string
	System string
}

// Generation is the successful outcome of a Generate call.
type Generation struct {
	Text         string
	OutputTokens int
}

// Generator abstracts the external text generation service. Any failure
// (transport, quota, validation) is opaque to the caller beyond the
// returned error.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (*Generation, error)
}
