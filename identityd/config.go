package identityd

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr string `env:"IDENTITYD_ADDR" envDefault:":8080"`

	// DatabaseURL switches storage from in-memory to Postgres when set.
	DatabaseURL string `env:"IDENTITYD_DATABASE_URL"`
}

// ConfigFromEnv loads server configuration from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
