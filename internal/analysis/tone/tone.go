// Package tone classifies the emotional register of text, delegating to an
// injected capability with a deterministic keyword fallback.
package tone

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eastrand/modsignal/internal/analysis/patterns"
	"github.com/eastrand/modsignal/internal/core/domain"
	"github.com/eastrand/modsignal/internal/observability"
)

const (
	fallbackBase        = 0.5
	fallbackPerKeyword  = 0.1
	fallbackCap         = 0.8
	fallbackMinHits     = 2
	neutralConfidence   = 0.6
	defaultClassifyTime = 10 * time.Second
)

// Classifier owns an optional capability provider and the keyword fallback.
// Classify never fails: any capability problem degrades to the fallback.
type Classifier struct {
	provider Provider
	timeout  time.Duration
	logger   *zerolog.Logger
}

// NewClassifier builds a Classifier. provider may be nil for fallback-only
// operation; timeout <= 0 uses the default capability timeout.
func NewClassifier(provider Provider, timeout time.Duration, logger *zerolog.Logger) *Classifier {
	if logger == nil {
		nopLogger := zerolog.Nop()
		logger = &nopLogger
	}

	if timeout <= 0 {
		timeout = defaultClassifyTime
	}

	return &Classifier{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Classify returns the tone of text. The capability call carries its own
// timeout; on any error the keyword fallback answers instead.
func (c *Classifier) Classify(ctx context.Context, text string) domain.ToneResult {
	if c.provider == nil || !c.provider.IsAvailable() {
		observability.ToneFallbacks.Inc()

		return Fallback(text)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.provider.Classify(ctx, text)
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("provider", c.provider.Name()).
			Msg("tone capability failed, using keyword fallback")
		observability.ToneFallbacks.Inc()

		return Fallback(text)
	}

	return result
}

// Fallback classifies tone by counting case-insensitive keyword hits against
// the four fixed keyword sets. Two hits in a set decide the tone; hostile
// outranks frustrated outranks dramatic outranks polite.
func Fallback(text string) domain.ToneResult {
	lower := strings.ToLower(text)

	hostile := countHits(lower, patterns.HostileKeywords)
	frustrated := countHits(lower, patterns.FrustratedKeywords)
	dramatic := countHits(lower, patterns.DramaticKeywords)
	polite := countHits(lower, patterns.PoliteKeywords)

	switch {
	case hostile >= fallbackMinHits:
		return fallbackResult(domain.ToneHostile, domain.ClassificationAdversarial, hostile)
	case frustrated >= fallbackMinHits:
		return fallbackResult(domain.ToneFrustrated, domain.ClassificationAdversarial, frustrated)
	case dramatic >= fallbackMinHits:
		return fallbackResult(domain.ToneDramatic, domain.ClassificationNeutral, dramatic)
	case polite >= fallbackMinHits:
		return fallbackResult(domain.TonePolite, domain.ClassificationFriendly, polite)
	default:
		return domain.ToneResult{
			Tone:           domain.ToneNeutral,
			Confidence:     neutralConfidence,
			Classification: domain.ClassificationNeutral,
		}
	}
}

func fallbackResult(t domain.Tone, c domain.Classification, hits int) domain.ToneResult {
	confidence := fallbackBase + float64(hits)*fallbackPerKeyword
	if confidence > fallbackCap {
		confidence = fallbackCap
	}

	return domain.ToneResult{
		Tone:           t,
		Confidence:     confidence,
		Classification: c,
	}
}

func countHits(lower string, keywords []string) int {
	hits := 0

	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		}
	}

	return hits
}
