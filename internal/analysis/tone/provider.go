package tone

import (
	"context"
	"errors"

	"github.com/eastrand/modsignal/internal/core/domain"
)

// Provider is an externally supplied tone-classification capability. The
// classifier treats every failure mode uniformly: any error switches to the
// keyword fallback, never surfacing to the caller.
type Provider interface {
	// Name returns the provider identifier for logs and metrics.
	Name() string

	// IsAvailable reports whether the provider is configured and usable.
	IsAvailable() bool

	// Classify returns a typed tone result for the given text or an error.
	Classify(ctx context.Context, text string) (domain.ToneResult, error)
}

// ErrCircuitBreakerOpen indicates the capability is skipped after repeated
// consecutive failures.
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

// ErrMalformedResponse indicates the capability returned something that
// could not be decoded into a valid tone result.
var ErrMalformedResponse = errors.New("malformed classification response")
