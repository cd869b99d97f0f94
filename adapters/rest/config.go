package rest

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL string        `env:"CENTAVO_API_URL"`
	Timeout time.Duration `env:"CENTAVO_API_TIMEOUT" envDefault:"15s"`
}

// ConfigFromEnv loads client configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
