package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/eastrand/modsignal/internal/analysis"
	"github.com/eastrand/modsignal/internal/core/domain"
	"github.com/eastrand/modsignal/internal/dedup"
)

const dateLayout = "2006-01-02"

// Handler holds the dependencies shared by all HTTP endpoints.
type Handler struct {
	analyzer   *analysis.Analyzer
	merger     dedup.Merger
	batchLimit int
	logger     *zerolog.Logger
}

// NewHandler creates a Handler. batchLimit caps the number of items accepted
// by the batch endpoint.
func NewHandler(analyzer *analysis.Analyzer, merger dedup.Merger, batchLimit int, logger *zerolog.Logger) *Handler {
	if logger == nil {
		nopLogger := zerolog.Nop()
		logger = &nopLogger
	}

	return &Handler{
		analyzer:   analyzer,
		merger:     merger,
		batchLimit: batchLimit,
		logger:     logger,
	}
}

// GetHealth reports liveness. The engine has no external hard dependencies,
// so a running process is a healthy process.
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeContent runs the full detector suite over one content item.
func (h *Handler) AnalyzeContent(c *gin.Context) {
	var item domain.ContentItem

	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})

		return
	}

	if err := validateItem(item); err != "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err})

		return
	}

	c.JSON(http.StatusOK, h.analyzer.Analyze(c.Request.Context(), item))
}

// AnalyzeBatch runs the detector suite over up to batchLimit items,
// preserving input order in the response.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req batchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})

		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "items must not be empty"})

		return
	}

	if len(req.Items) > h.batchLimit {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{
			Error:   "too many items",
			Details: "the batch endpoint accepts at most " + strconv.Itoa(h.batchLimit) + " items",
		})

		return
	}

	for _, item := range req.Items {
		if err := validateItem(item); err != "" {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err, Details: "item " + item.ID})

			return
		}
	}

	results := make([]domain.AggregatedAnalysis, 0, len(req.Items))
	for _, item := range req.Items {
		results = append(results, h.analyzer.Analyze(c.Request.Context(), item))
	}

	c.JSON(http.StatusOK, batchResponse{Results: results, Count: len(results)})
}

// DeduplicateEvents normalizes record dates and collapses near-duplicates.
func (h *Handler) DeduplicateEvents(c *gin.Context) {
	var req deduplicateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body", Details: err.Error()})

		return
	}

	records := make([]domain.EventRecord, 0, len(req.Records))

	for _, record := range req.Records {
		normalized, err := normalizeRecordDates(record)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   "unparseable event date",
				Details: "record " + record.ID + ": " + err.Error(),
			})

			return
		}

		records = append(records, normalized)
	}

	merger := h.merger
	if req.Threshold > 0 {
		merger = dedup.New(req.Threshold)
	}

	events := merger.Deduplicate(records)

	c.JSON(http.StatusOK, deduplicateResponse{
		Events:      events,
		InputCount:  len(records),
		OutputCount: len(events),
	})
}

// normalizeRecordDates rewrites DateStart and DateEnd into YYYY-MM-DD form,
// accepting anything dateparse understands. Sources disagree wildly on date
// formats and the merge keys on the start date.
func normalizeRecordDates(record domain.EventRecord) (domain.EventRecord, error) {
	start, err := dateparse.ParseAny(record.DateStart)
	if err != nil {
		return record, err
	}

	record.DateStart = start.Format(dateLayout)

	if record.DateEnd != "" {
		end, err := dateparse.ParseAny(record.DateEnd)
		if err != nil {
			return record, err
		}

		record.DateEnd = end.Format(dateLayout)
	}

	return record, nil
}

func validateItem(item domain.ContentItem) string {
	switch item.Type {
	case domain.ContentTypeComment, domain.ContentTypePost:
	default:
		return "type must be \"comment\" or \"post\""
	}

	if item.Body == "" && item.Title == "" {
		return "body or title is required"
	}

	return ""
}
