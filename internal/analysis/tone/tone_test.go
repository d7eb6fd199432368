package tone

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/eastrand/modsignal/internal/core/domain"
)

type stubProvider struct {
	mock.Mock
}

func (m *stubProvider) Name() string {
	return "stub"
}

func (m *stubProvider) IsAvailable() bool {
	args := m.Called()

	return args.Bool(0)
}

func (m *stubProvider) Classify(ctx context.Context, text string) (domain.ToneResult, error) {
	args := m.Called(ctx, text)

	result, _ := args.Get(0).(domain.ToneResult)

	return result, args.Error(1)
}

func TestFallback(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		tone           domain.Tone
		classification domain.Classification
		confidence     float64
	}{
		{
			name:           "hostile_two_hits",
			text:           "I hate this garbage place",
			tone:           domain.ToneHostile,
			classification: domain.ClassificationAdversarial,
			confidence:     0.7,
		},
		{
			name:           "hostile_capped",
			text:           "hate this stupid trash, awful idiots everywhere",
			tone:           domain.ToneHostile,
			classification: domain.ClassificationAdversarial,
			confidence:     0.8,
		},
		{
			name:           "frustrated",
			text:           "so annoying and frankly ridiculous",
			tone:           domain.ToneFrustrated,
			classification: domain.ClassificationAdversarial,
			confidence:     0.7,
		},
		{
			name:           "dramatic",
			text:           "literally everyone always does this",
			tone:           domain.ToneDramatic,
			classification: domain.ClassificationNeutral,
			confidence:     0.8,
		},
		{
			name:           "polite",
			text:           "thank you, much appreciated",
			tone:           domain.TonePolite,
			classification: domain.ClassificationFriendly,
			confidence:     0.7,
		},
		{
			name:           "neutral_default",
			text:           "the meeting starts at noon",
			tone:           domain.ToneNeutral,
			classification: domain.ClassificationNeutral,
			confidence:     0.6,
		},
		{
			name:           "hostile_outranks_frustrated",
			text:           "sick of this annoying stupid garbage",
			tone:           domain.ToneHostile,
			classification: domain.ClassificationAdversarial,
			confidence:     0.7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fallback(tt.text)

			assert.Equal(t, tt.tone, got.Tone)
			assert.Equal(t, tt.classification, got.Classification)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestClassifierNoProvider(t *testing.T) {
	c := NewClassifier(nil, 0, nil)

	got := c.Classify(context.Background(), "I hate this garbage place")

	assert.Equal(t, domain.ToneHostile, got.Tone)
	assert.Equal(t, domain.ClassificationAdversarial, got.Classification)
}

func TestClassifierProviderResult(t *testing.T) {
	provider := &stubProvider{}
	provider.On("IsAvailable").Return(true)
	provider.On("Classify", mock.Anything, "some text").Return(domain.ToneResult{
		Tone:           domain.ToneDramatic,
		Confidence:     0.9,
		Classification: domain.ClassificationNeutral,
		TriggerPhrase:  "worst ever",
	}, nil)

	c := NewClassifier(provider, 0, nil)

	got := c.Classify(context.Background(), "some text")

	assert.Equal(t, domain.ToneDramatic, got.Tone)
	assert.Equal(t, "worst ever", got.TriggerPhrase)
	provider.AssertExpectations(t)
}

func TestClassifierProviderErrorFallsBack(t *testing.T) {
	provider := &stubProvider{}
	provider.On("IsAvailable").Return(true)
	provider.On("Classify", mock.Anything, mock.Anything).
		Return(domain.ToneResult{}, errors.New("capability down"))

	c := NewClassifier(provider, 0, nil)

	got := c.Classify(context.Background(), "thank you, much appreciated")

	assert.Equal(t, domain.TonePolite, got.Tone)
	assert.Equal(t, domain.ClassificationFriendly, got.Classification)
}

func TestClassifierProviderUnavailableFallsBack(t *testing.T) {
	provider := &stubProvider{}
	provider.On("IsAvailable").Return(false)

	c := NewClassifier(provider, 0, nil)

	got := c.Classify(context.Background(), "the meeting starts at noon")

	assert.Equal(t, domain.ToneNeutral, got.Tone)
	provider.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
}
