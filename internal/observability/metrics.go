package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modsignal_analyses_total",
		Help: "The total number of content items analyzed",
	}, []string{"type"})

	AnalyzeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "modsignal_analyze_duration_seconds",
		Help:    "Duration of a full content analysis fan-out",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	})

	DetectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modsignal_detections_total",
		Help: "The total number of positive detections by kind",
	}, []string{"kind"})

	EventsEmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modsignal_events_emitted_total",
		Help: "The total number of events emitted by the orchestrator",
	}, []string{"event"})

	ToneRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "modsignal_tone_request_duration_seconds",
		Help:    "Duration of tone capability requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})

	ToneCapabilityFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modsignal_tone_capability_failures_total",
		Help: "Total number of tone capability failures by reason",
	}, []string{"provider", "reason"})

	ToneFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modsignal_tone_fallbacks_total",
		Help: "Total number of tone classifications served by the keyword fallback",
	})

	ToneCircuitBreakerOpens = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modsignal_tone_circuit_breaker_opens_total",
		Help: "Total number of times the tone capability circuit breaker opened",
	}, []string{"provider"})

	DedupRecordsIn = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modsignal_dedup_records_in_total",
		Help: "Total number of event records entering deduplication",
	})

	DedupRecordsOut = promauto.NewCounter(prometheus.CounterOpts{
		Name: "modsignal_dedup_records_out_total",
		Help: "Total number of event records surviving deduplication",
	})

	DedupMerged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "modsignal_dedup_merged_total",
		Help: "Total number of records dropped or replaced during deduplication",
	}, []string{"kind"})
)
