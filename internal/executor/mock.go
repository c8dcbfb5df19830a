package executor

import (
	"context"
	"fmt"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

// ─── Mock Generator (for testing and dry runs without network) ──────────────

// MockGenerator implements domain.Generator without network access.
// If Fn is set it handles the call; otherwise canned content is echoed.
type MockGenerator struct {
	Fn func(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error)
}

func NewMockGenerator() *MockGenerator { return &MockGenerator{} }

func (m *MockGenerator) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
	if m.Fn != nil {
		return m.Fn(ctx, req)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	text := fmt.Sprintf("## Mock Block\n\nGenerated from a %d-character prompt.", len(req.Prompt))
	return &domain.Generation{Text: text, OutputTokens: len(text) / 4}, nil
}
