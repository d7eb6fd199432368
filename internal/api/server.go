// Package api exposes the analysis engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const requestIDHeader = "X-Request-ID"

// ServerOptions carry the request-handling knobs that are not part of the
// handler itself.
type ServerOptions struct {
	APIKey       string
	RateLimitRPS float64
}

// NewServer builds the router with all routes and middleware configured.
// The analysis endpoints check the configured API key; with no key
// configured they are open.
func NewServer(handler *Handler, opts ServerOptions, logger *zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware(logger))

	if opts.RateLimitRPS > 0 {
		r.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(opts.RateLimitRPS), int(opts.RateLimitRPS)+1)))
	}

	r.GET("/health", handler.GetHealth)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authed := r.Group("/")
	authed.Use(authMiddleware(opts.APIKey))
	{
		authed.POST("/analyze/content", handler.AnalyzeContent)
		authed.POST("/analyze/batch", handler.AnalyzeBatch)
		authed.POST("/events/deduplicate", handler.DeduplicateEvents)
	}

	if opts.APIKey != "" {
		logger.Info().Msg("analysis endpoints enabled with authentication")
	} else {
		logger.Warn().Msg("analysis endpoints open (API_ACCESS_KEY not set)")
	}

	return r
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

func loggingMiddleware(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

func rateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})

			return
		}

		c.Next()
	}
}

// authMiddleware checks the X-API-Key header. An empty configured key
// disables the check entirely.
func authMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()

			return
		}

		provided := c.GetHeader("X-API-Key")
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{
				Error:   "API key required",
				Details: "provide the key in the X-API-Key header",
			})

			return
		}

		if provided != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid API key"})

			return
		}

		c.Next()
	}
}
