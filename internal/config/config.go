// Package config loads runtime configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"local"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// APIKey guards the mutating endpoints; when empty they are disabled.
	APIKey string `env:"API_ACCESS_KEY"`

	// LLMAPIKey enables model-backed tone classification. Empty means the
	// keyword fallback handles every item; the value "mock" wires a canned
	// provider for local runs.
	LLMAPIKey   string        `env:"LLM_API_KEY"`
	LLMModel    string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	ToneRPS     float64       `env:"TONE_RPS" envDefault:"1"`
	ToneTimeout time.Duration `env:"TONE_TIMEOUT" envDefault:"10s"`

	DedupThreshold int `env:"DEDUP_THRESHOLD" envDefault:"80"`

	BatchLimit   int     `env:"BATCH_LIMIT" envDefault:"50"`
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
