// Package app wires the analysis engine together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/eastrand/modsignal/internal/analysis"
	"github.com/eastrand/modsignal/internal/analysis/tone"
	"github.com/eastrand/modsignal/internal/api"
	"github.com/eastrand/modsignal/internal/config"
	"github.com/eastrand/modsignal/internal/dedup"
)

const (
	llmAPIKeyMock   = "mock"
	shutdownTimeout = 5 * time.Second
)

// App holds the application dependencies.
type App struct {
	cfg    *config.Config
	logger *zerolog.Logger
}

// New creates an App instance with the given dependencies.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// Run builds the engine and serves HTTP until the context is cancelled.
func (a *App) Run(ctx context.Context) error {
	classifier := tone.NewClassifier(a.toneProvider(), a.cfg.ToneTimeout, a.logger)
	analyzer := analysis.New(classifier, a.logger)
	merger := dedup.New(a.cfg.DedupThreshold)

	handler := api.NewHandler(analyzer, merger, a.cfg.BatchLimit, a.logger)
	router := api.NewServer(handler, api.ServerOptions{
		APIKey:       a.cfg.APIKey,
		RateLimitRPS: a.cfg.RateLimitRPS,
	}, a.logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	a.logger.Info().Int("port", a.cfg.Port).Msg("server starting")

	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// toneProvider selects the tone backend from configuration: none (keyword
// fallback only), a canned provider for local runs, or the real model client.
func (a *App) toneProvider() tone.Provider {
	switch a.cfg.LLMAPIKey {
	case "":
		a.logger.Warn().Msg("LLM_API_KEY not set, tone classification uses the keyword fallback")

		return nil
	case llmAPIKeyMock:
		return tone.NewMockProvider()
	default:
		return tone.NewOpenAIProvider(a.cfg.LLMAPIKey, a.cfg.LLMModel, a.cfg.ToneRPS, a.logger)
	}
}
