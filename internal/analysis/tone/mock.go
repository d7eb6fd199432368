package tone

import (
	"context"

	"github.com/eastrand/modsignal/internal/core/domain"
)

// mockProvider returns a canned neutral result. Used in tests and for
// keyless local runs where exercising the capability path still matters.
type mockProvider struct{}

// NewMockProvider creates the mock tone capability.
func NewMockProvider() Provider {
	return &mockProvider{}
}

func (p *mockProvider) Name() string {
	return "mock"
}

func (p *mockProvider) IsAvailable() bool {
	return true
}

func (p *mockProvider) Classify(_ context.Context, _ string) (domain.ToneResult, error) {
	return domain.ToneResult{
		Tone:           domain.ToneNeutral,
		Confidence:     defaultConfidence,
		Classification: domain.ClassificationNeutral,
	}, nil
}

var _ Provider = (*mockProvider)(nil)
