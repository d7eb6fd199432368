// Package dedup collapses near-duplicate event records aggregated from
// multiple untrusted sources.
package dedup

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/unicode/norm"

	"github.com/eastrand/modsignal/internal/core/domain"
	"github.com/eastrand/modsignal/internal/observability"
)

// DefaultThreshold is the title-similarity score (0-100) above which two
// records on the same date count as the same event.
const DefaultThreshold = 80

// marketingPhrases are stripped from titles before comparison: ticketing
// sites prepend status tags and append location suffixes that differ per
// source for the same event.
var marketingPhrases = []string{
	"free:", "free ", "sold out:", "sold out ",
	"cancelled:", "cancelled ", "postponed:",
	"- seattle", "| seattle", "(seattle)",
	"- wa", "| wa",
}

// Merger deduplicates one batch of event records.
type Merger interface {
	Deduplicate(records []domain.EventRecord) []domain.EventRecord
}

type fuzzyMerger struct {
	threshold int
}

// New creates a Merger with the given similarity threshold; values outside
// (0,100] fall back to DefaultThreshold.
func New(threshold int) Merger {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultThreshold
	}

	return &fuzzyMerger{threshold: threshold}
}

// Deduplicate merges near-duplicate records, processing them in input
// order. Exact duplicates (same normalized title and start date) are
// dropped outright. Fuzzy duplicates keep whichever record carries the
// longer description; a replacement moves to the end of the accepted list.
// The loop is order-dependent and must stay sequential: each decision reads
// the in-progress accepted set.
func (m *fuzzyMerger) Deduplicate(records []domain.EventRecord) []domain.EventRecord {
	if len(records) == 0 {
		return nil
	}

	observability.DedupRecordsIn.Add(float64(len(records)))

	accepted := make([]domain.EventRecord, 0, len(records))
	seenKeys := make(map[string]bool)

	for _, record := range records {
		normalized := NormalizeTitle(record.Title)

		exactKey := normalized + ":" + record.DateStart
		if seenKeys[exactKey] {
			observability.DedupMerged.WithLabelValues("exact").Inc()

			continue
		}

		match := m.findFuzzyMatch(accepted, record, normalized)
		if match >= 0 {
			observability.DedupMerged.WithLabelValues("fuzzy").Inc()

			// Keep whichever record carries more information; a replacement
			// vacates the duplicate's slot and joins at the end.
			if len(record.Description) > len(accepted[match].Description) {
				accepted = append(accepted[:match], accepted[match+1:]...)
				accepted = append(accepted, record)
				seenKeys[exactKey] = true
			}

			continue
		}

		accepted = append(accepted, record)
		seenKeys[exactKey] = true
	}

	observability.DedupRecordsOut.Add(float64(len(accepted)))

	return accepted
}

// findFuzzyMatch returns the index of the first accepted record on the same
// start date whose normalized title scores at or above the threshold, or -1.
func (m *fuzzyMerger) findFuzzyMatch(accepted []domain.EventRecord, record domain.EventRecord, normalized string) int {
	for i, existing := range accepted {
		if existing.DateStart != record.DateStart {
			continue
		}

		if fuzzy.Ratio(normalized, NormalizeTitle(existing.Title)) >= m.threshold {
			return i
		}
	}

	return -1
}

// NormalizeTitle canonicalizes an event title for comparison: NFKC folding,
// lowercase, marketing prefixes/suffixes removed, whitespace collapsed.
func NormalizeTitle(title string) string {
	normalized := strings.ToLower(norm.NFKC.String(title))

	for _, phrase := range marketingPhrases {
		normalized = strings.ReplaceAll(normalized, phrase, "")
	}

	return strings.Join(strings.Fields(normalized), " ")
}
