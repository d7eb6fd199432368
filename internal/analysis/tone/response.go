package tone

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eastrand/modsignal/internal/core/domain"
)

// defaultConfidence is assumed when the capability omits the field.
const defaultConfidence = 0.7

type classificationPayload struct {
	Tone           string  `json:"tone"`
	Confidence     float64 `json:"confidence"`
	Classification string  `json:"classification"`
	TriggerPhrase  string  `json:"trigger_phrase"`
}

// parseClassification decodes a capability response into a validated
// ToneResult. Code fences and surrounding prose are stripped first; any
// decode or enum failure is reported as ErrMalformedResponse so the caller
// falls back.
func parseClassification(raw string) (domain.ToneResult, error) {
	cleaned := extractJSON(stripCodeFence(raw))

	var payload classificationPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return domain.ToneResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	tone := domain.Tone(payload.Tone)
	if !validTone(tone) {
		return domain.ToneResult{}, fmt.Errorf("%w: unknown tone %q", ErrMalformedResponse, payload.Tone)
	}

	classification := domain.Classification(payload.Classification)
	if !validClassification(classification) {
		return domain.ToneResult{}, fmt.Errorf("%w: unknown classification %q", ErrMalformedResponse, payload.Classification)
	}

	confidence := payload.Confidence
	if confidence <= 0 || confidence > 1 {
		confidence = defaultConfidence
	}

	return domain.ToneResult{
		Tone:           tone,
		Confidence:     confidence,
		Classification: classification,
		TriggerPhrase:  payload.TriggerPhrase,
	}, nil
}

// stripCodeFence removes surrounding markdown fences from a response that
// ignored the no-markdown instruction.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")

	if end := strings.Index(text, "```"); end != -1 {
		text = text[:end]
	}

	return strings.TrimSpace(text)
}

// extractJSON picks the JSON object out of a response that might wrap it in
// extra prose.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}

func validTone(t domain.Tone) bool {
	switch t {
	case domain.TonePolite, domain.ToneNeutral, domain.ToneFrustrated, domain.ToneHostile, domain.ToneDramatic:
		return true
	default:
		return false
	}
}

func validClassification(c domain.Classification) bool {
	switch c {
	case domain.ClassificationFriendly, domain.ClassificationNeutral,
		domain.ClassificationAdversarial, domain.ClassificationHateful:
		return true
	default:
		return false
	}
}
