package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"SpendLens"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	Upstream struct {
		BaseURL string        `envconfig:"UPSTREAM_BASE_URL" default:"http://localhost:8000"`
		Timeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
