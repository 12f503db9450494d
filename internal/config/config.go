// Package config loads process configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the colorseason server.
type Config struct {
	// LogLevel is an hclog level name: trace, debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; a missing file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel: os.Getenv("COLORSEASON_LOG_LEVEL"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg
}
