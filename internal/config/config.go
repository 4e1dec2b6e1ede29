package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the prediction service
type Config struct {
	// Server configuration
	HTTPPort int    `env:"CREST_HTTP_PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Artifact location
	ArtifactsDir string `env:"CREST_ARTIFACTS_DIR" envDefault:"./artifacts"`

	// Browser origins allowed to call the API
	FrontendURLs []string `env:"FRONTEND_URLS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`

	// Timeouts
	ShutdownTimeout time.Duration `env:"CREST_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.ArtifactsDir == "" {
		return fmt.Errorf("artifacts directory is required")
	}

	if len(c.FrontendURLs) == 0 {
		return fmt.Errorf("at least one frontend origin is required")
	}
	for _, origin := range c.FrontendURLs {
		if origin == "" {
			return fmt.Errorf("frontend origin must not be empty")
		}
	}

	// Validate log level
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
