package api

import (
	"github.com/eastrand/modsignal/internal/core/domain"
)

type batchRequest struct {
	Items []domain.ContentItem `json:"items"`
}

type batchResponse struct {
	Results []domain.AggregatedAnalysis `json:"results"`
	Count   int                         `json:"count"`
}

type deduplicateRequest struct {
	Records []domain.EventRecord `json:"records"`

	// Threshold optionally overrides the configured similarity threshold
	// for this request only. Zero means "use the default".
	Threshold int `json:"threshold,omitempty"`
}

type deduplicateResponse struct {
	Events      []domain.EventRecord `json:"events"`
	InputCount  int                  `json:"input_count"`
	OutputCount int                  `json:"output_count"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
