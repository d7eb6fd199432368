package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eastrand/modsignal/internal/core/domain"
)

func TestParseClassification(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    domain.ToneResult
		wantErr bool
	}{
		{
			name: "bare_object",
			raw:  `{"tone":"hostile","confidence":0.85,"classification":"adversarial","trigger_phrase":"you people"}`,
			want: domain.ToneResult{
				Tone:           domain.ToneHostile,
				Confidence:     0.85,
				Classification: domain.ClassificationAdversarial,
				TriggerPhrase:  "you people",
			},
		},
		{
			name: "fenced_json",
			raw:  "```json\n{\"tone\":\"polite\",\"confidence\":0.9,\"classification\":\"friendly\"}\n```",
			want: domain.ToneResult{
				Tone:           domain.TonePolite,
				Confidence:     0.9,
				Classification: domain.ClassificationFriendly,
			},
		},
		{
			name: "fenced_without_language",
			raw:  "```\n{\"tone\":\"neutral\",\"confidence\":0.7,\"classification\":\"neutral\"}\n```",
			want: domain.ToneResult{
				Tone:           domain.ToneNeutral,
				Confidence:     0.7,
				Classification: domain.ClassificationNeutral,
			},
		},
		{
			name: "prose_wrapped",
			raw:  `Here is the analysis: {"tone":"dramatic","confidence":0.6,"classification":"neutral"} hope that helps`,
			want: domain.ToneResult{
				Tone:           domain.ToneDramatic,
				Confidence:     0.6,
				Classification: domain.ClassificationNeutral,
			},
		},
		{
			name: "missing_confidence_defaults",
			raw:  `{"tone":"frustrated","classification":"adversarial"}`,
			want: domain.ToneResult{
				Tone:           domain.ToneFrustrated,
				Confidence:     0.7,
				Classification: domain.ClassificationAdversarial,
			},
		},
		{
			name: "out_of_range_confidence_defaults",
			raw:  `{"tone":"neutral","confidence":7,"classification":"neutral"}`,
			want: domain.ToneResult{
				Tone:           domain.ToneNeutral,
				Confidence:     0.7,
				Classification: domain.ClassificationNeutral,
			},
		},
		{
			name:    "unknown_tone",
			raw:     `{"tone":"sarcastic","confidence":0.8,"classification":"neutral"}`,
			wantErr: true,
		},
		{
			name:    "unknown_classification",
			raw:     `{"tone":"neutral","confidence":0.8,"classification":"spicy"}`,
			wantErr: true,
		},
		{
			name:    "not_json",
			raw:     "the tone is hostile, probably",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseClassification(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedResponse)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "abcde", truncateRunes("abcdefgh", 5))
	// Multi-byte runes are never split.
	assert.Equal(t, "héllo", truncateRunes("héllo wörld", 5))
}
