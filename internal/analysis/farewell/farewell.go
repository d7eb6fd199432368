// Package farewell detects departure announcements and political
// echo-chamber complaints via ordered pattern cascades.
package farewell

import (
	"strings"

	"github.com/eastrand/modsignal/internal/analysis/patterns"
	"github.com/eastrand/modsignal/internal/core/domain"
)

const (
	baseConfidence    = 0.5
	perPatternBoost   = 0.15
	patternBoostCap   = 0.8
	perKeywordBoost   = 0.05
	confidenceCeiling = 0.95
	detectThreshold   = 0.5
)

// Detect reports whether text announces a departure from the community.
// Negation rules are an absolute veto: a question about unsubscribing never
// counts, no matter how many positive rules match.
func Detect(text string) domain.FarewellResult {
	for _, rule := range patterns.FarewellNegationRules {
		if rule.Re.MatchString(text) {
			return domain.FarewellResult{}
		}
	}

	var matched []string

	for _, rule := range patterns.FarewellRules {
		if rule.Re.MatchString(text) {
			matched = append(matched, rule.ID)
		}
	}

	if len(matched) == 0 {
		return domain.FarewellResult{}
	}

	confidence := baseConfidence + float64(len(matched))*perPatternBoost
	if confidence > patternBoostCap {
		confidence = patternBoostCap
	}

	lower := strings.ToLower(text)
	for _, kw := range patterns.FarewellContextKeywords {
		if strings.Contains(lower, kw) {
			confidence += perKeywordBoost
		}
	}

	if confidence > confidenceCeiling {
		confidence = confidenceCeiling
	}

	// With one rule matched the floor is 0.65, so the threshold comparison
	// can only pass here. Kept anyway: consumers read the graded confidence
	// and the boolean must stay derived from it.
	return domain.FarewellResult{
		Detected:        confidence >= detectThreshold,
		Confidence:      confidence,
		MatchedPatterns: matched,
	}
}

// DetectPoliticalComplaint reports partisan echo-chamber complaints. The
// first matching rule wins; lean markers on the whole text decide direction.
func DetectPoliticalComplaint(text string) domain.PoliticalComplaintResult {
	for _, rule := range patterns.PoliticalComplaintRules {
		if !rule.Re.MatchString(text) {
			continue
		}

		complaintType := domain.ComplaintGeneral

		switch {
		case patterns.RightLeaningMarkers.MatchString(text):
			complaintType = domain.ComplaintRightLeaning
		case patterns.LeftLeaningMarkers.MatchString(text):
			complaintType = domain.ComplaintLeftLeaning
		}

		return domain.PoliticalComplaintResult{
			Detected:       true,
			ComplaintType:  complaintType,
			MatchedPattern: rule.ID,
		}
	}

	return domain.PoliticalComplaintResult{}
}
