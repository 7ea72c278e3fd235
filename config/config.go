package config

import (
	"log/slog"
	"os"
	"strings"
)

// AppConfig is the main client configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - api.go: Reservation backend configuration
//   - storage.go: Session storage and Redis configuration
//   - observability.go: StatsD metrics
type AppConfig struct {
	// IsDev controls development mode behavior (text logs, debug level).
	// Set DEV=true or NODE_ENV=development for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Reservation backend configuration
	API APIConfig

	// Session storage configuration
	Storage StorageConfig
	Redis   RedisConfig `envPrefix:"REDIS_"`

	// Output configuration
	Output OutputConfig

	// Metrics configuration
	Observability ObservabilityConfig
}

// OutputConfig controls how hotelctl renders results.
type OutputConfig struct {
	// Format is json or table; validated when the printer is built.
	Format string `env:"OUTPUT_FORMAT" envDefault:"json"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.API.Sanitize()
	c.Storage.Sanitize()
	c.Redis.Sanitize()
	c.Observability.Sanitize()

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	c.detectDevMode()
}

// SlogLevel maps LogLevel to a slog level. Unknown values fall back to info,
// or debug in dev mode.
func (c *AppConfig) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	}
	if c.IsDev {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback (common in frontend tooling).
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}
