package tone

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/eastrand/modsignal/internal/core/domain"
	"github.com/eastrand/modsignal/internal/observability"
)

const (
	// maxClassifyRunes bounds the text sent to the capability.
	maxClassifyRunes = 500

	circuitBreakerThreshold = 5
	circuitBreakerTimeout   = 1 * time.Minute
	rateLimiterBurst        = 5

	providerNameOpenAI = "openai"
)

const classifyPrompt = `Analyze the tone of the user's text and classify it.

Return ONLY valid JSON (no markdown):
{
  "tone": "polite" | "neutral" | "frustrated" | "hostile" | "dramatic",
  "confidence": 0.0-1.0,
  "classification": "friendly" | "neutral" | "adversarial" | "hateful",
  "trigger_phrase": "optional phrase that indicates the tone"
}

Definitions:
- polite: Kind, appreciative, welcoming
- neutral: Matter-of-fact, no strong emotion
- frustrated: Annoyed but not aggressive
- hostile: Aggressive, attacking, insulting
- dramatic: Over-the-top emotional, exaggerated

- friendly: Positive engagement
- neutral: Neither positive nor negative
- adversarial: Critical, negative, attacking the community
- hateful: Contains slurs, threats, or extreme hostility`

type openaiProvider struct {
	client      *openai.Client
	model       string
	logger      *zerolog.Logger
	rateLimiter *rate.Limiter

	// Circuit breaker state
	consecutiveFailures int
	circuitOpenUntil    time.Time
	mu                  sync.Mutex
}

// NewOpenAIProvider builds the OpenAI-backed tone capability.
func NewOpenAIProvider(apiKey, model string, rps float64, logger *zerolog.Logger) Provider {
	return &openaiProvider{
		client:      openai.NewClient(apiKey),
		model:       model,
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(rps), rateLimiterBurst),
	}
}

func (p *openaiProvider) Name() string {
	return providerNameOpenAI
}

func (p *openaiProvider) IsAvailable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return time.Now().After(p.circuitOpenUntil)
}

func (p *openaiProvider) Classify(ctx context.Context, text string) (domain.ToneResult, error) {
	if err := p.checkCircuit(); err != nil {
		return domain.ToneResult{}, err
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return domain.ToneResult{}, fmt.Errorf("rate limiter: %w", err)
	}

	start := time.Now()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Temperature: 0.1,
		MaxTokens:   256,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: classifyPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: truncateRunes(text, maxClassifyRunes),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})

	observability.ToneRequestDuration.WithLabelValues(providerNameOpenAI).Observe(time.Since(start).Seconds())

	if err != nil {
		p.recordFailure()
		observability.ToneCapabilityFailures.WithLabelValues(providerNameOpenAI, "request").Inc()

		return domain.ToneResult{}, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		p.recordFailure()
		observability.ToneCapabilityFailures.WithLabelValues(providerNameOpenAI, "empty").Inc()

		return domain.ToneResult{}, fmt.Errorf("%w: no choices returned", ErrMalformedResponse)
	}

	result, err := parseClassification(resp.Choices[0].Message.Content)
	if err != nil {
		p.recordFailure()
		observability.ToneCapabilityFailures.WithLabelValues(providerNameOpenAI, "parse").Inc()

		return domain.ToneResult{}, err
	}

	p.recordSuccess()

	return result, nil
}

func (p *openaiProvider) checkCircuit() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Now().Before(p.circuitOpenUntil) {
		return fmt.Errorf("%w until %v", ErrCircuitBreakerOpen, p.circuitOpenUntil)
	}

	return nil
}

func (p *openaiProvider) recordSuccess() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.consecutiveFailures = 0
}

func (p *openaiProvider) recordFailure() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.consecutiveFailures++
	if p.consecutiveFailures >= circuitBreakerThreshold {
		p.circuitOpenUntil = time.Now().Add(circuitBreakerTimeout)
		observability.ToneCircuitBreakerOpens.WithLabelValues(providerNameOpenAI).Inc()
		p.logger.Warn().
			Int("consecutive_failures", p.consecutiveFailures).
			Time("open_until", p.circuitOpenUntil).
			Msg("Tone capability circuit breaker opened")
	}
}

// truncateRunes cuts text to at most n runes without splitting a character.
func truncateRunes(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[:n])
}

// Ensure openaiProvider implements Provider.
var _ Provider = (*openaiProvider)(nil)
