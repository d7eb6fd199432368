// Package analysis orchestrates the content detectors over single items.
package analysis

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eastrand/modsignal/internal/analysis/crosslink"
	"github.com/eastrand/modsignal/internal/analysis/farewell"
	"github.com/eastrand/modsignal/internal/analysis/haiku"
	"github.com/eastrand/modsignal/internal/analysis/patterns"
	"github.com/eastrand/modsignal/internal/analysis/tone"
	"github.com/eastrand/modsignal/internal/core/domain"
	"github.com/eastrand/modsignal/internal/observability"
)

// Analyzer fans one content item out to every detector and derives the
// events downstream automation consumes. It holds no per-item state, so any
// number of Analyze calls may run concurrently.
type Analyzer struct {
	tone   *tone.Classifier
	logger *zerolog.Logger
}

// New builds an Analyzer around the given tone classifier.
func New(toneClassifier *tone.Classifier, logger *zerolog.Logger) *Analyzer {
	if logger == nil {
		nopLogger := zerolog.Nop()
		logger = &nopLogger
	}

	return &Analyzer{
		tone:   toneClassifier,
		logger: logger,
	}
}

// Analyze runs all five detectors over the item and returns the aggregated
// result plus the list of emitted events. Tone classification is the only
// detector that may touch I/O, so it runs concurrently with the others; the
// event derivation waits for both crosslink and tone results.
func (a *Analyzer) Analyze(ctx context.Context, item domain.ContentItem) domain.AggregatedAnalysis {
	start := time.Now()
	text := item.Text()

	toneCh := make(chan domain.ToneResult, 1)

	go func() {
		toneCh <- a.tone.Classify(ctx, text)
	}()

	haikuResult := safely(a.logger, "haiku", func() domain.HaikuResult {
		return haiku.Detect(text)
	})

	var farewellResult domain.FarewellResult

	if patterns.CouldBeFarewell(text) {
		farewellResult = safely(a.logger, "farewell", func() domain.FarewellResult {
			return farewell.Detect(text)
		})
	}

	politicalResult := safely(a.logger, "political_complaint", func() domain.PoliticalComplaintResult {
		return farewell.DetectPoliticalComplaint(text)
	})

	crosslinkResult := safely(a.logger, "crosslink", func() domain.CrosslinkResult {
		return crosslink.Detect(text, item.Subreddit)
	})

	toneResult := <-toneCh

	result := domain.AggregatedAnalysis{
		ID:        item.ID,
		Type:      item.Type,
		Subreddit: item.Subreddit,
		Author:    item.Author,
		Detections: domain.Detections{
			Haiku:              haikuResult,
			Farewell:           farewellResult,
			PoliticalComplaint: politicalResult,
			Crosslink:          crosslinkResult,
			Tone:               toneResult,
		},
		EventsEmitted: a.deriveEvents(item, haikuResult, farewellResult, politicalResult, crosslinkResult, toneResult),
	}

	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	observability.AnalysesTotal.WithLabelValues(string(item.Type)).Inc()
	observability.AnalyzeDuration.Observe(time.Since(start).Seconds())
	countDetections(result.Detections)

	return result
}

// deriveEvents turns detection results into the ordered list of emitted
// event names, writing one structured log record per emission.
func (a *Analyzer) deriveEvents(
	item domain.ContentItem,
	haikuResult domain.HaikuResult,
	farewellResult domain.FarewellResult,
	politicalResult domain.PoliticalComplaintResult,
	crosslinkResult domain.CrosslinkResult,
	toneResult domain.ToneResult,
) []string {
	events := make([]string, 0, 4)

	if haikuResult.Detected {
		a.emit(item, domain.EventHaikuDetection).Send()

		events = append(events, domain.EventHaikuDetection)
	}

	if farewellResult.Detected {
		a.emit(item, domain.EventFarewellAnnouncement).
			Float64("confidence", farewellResult.Confidence).
			Send()

		events = append(events, domain.EventFarewellAnnouncement)
	}

	if politicalResult.Detected {
		a.emit(item, domain.EventPoliticalComplaint).
			Str("complaint_type", string(politicalResult.ComplaintType)).
			Send()

		events = append(events, domain.EventPoliticalComplaint)
	}

	if crosslinkResult.Detected && adversarial(toneResult.Classification) {
		for _, link := range crosslinkResult.Links {
			a.emit(item, domain.EventHostileCrosslink).
				Str("source_subreddit", link.Subreddit).
				Str("target_subreddit", item.Subreddit).
				Str("classification", string(toneResult.Classification)).
				Send()

			events = append(events, domain.EventHostileCrosslink)
		}
	}

	for _, event := range events {
		observability.EventsEmitted.WithLabelValues(event).Inc()
	}

	return events
}

func countDetections(d domain.Detections) {
	for kind, detected := range map[string]bool{
		"haiku":               d.Haiku.Detected,
		"farewell":            d.Farewell.Detected,
		"political_complaint": d.PoliticalComplaint.Detected,
		"crosslink":           d.Crosslink.Detected,
	} {
		if detected {
			observability.DetectionsTotal.WithLabelValues(kind).Inc()
		}
	}
}

func (a *Analyzer) emit(item domain.ContentItem, event string) *zerolog.Event {
	return a.logger.Info().
		Str("event", event).
		Str("content_id", item.ID).
		Str("subreddit", item.Subreddit).
		Str("author", item.Author)
}

func adversarial(c domain.Classification) bool {
	return c == domain.ClassificationAdversarial || c == domain.ClassificationHateful
}

// safely runs one detector, converting a panic into the zero "not detected"
// result so one misbehaving detector cannot fail the whole analysis.
func safely[T any](logger *zerolog.Logger, name string, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Str("detector", name).Msg("detector panicked")
		}
	}()

	return fn()
}
