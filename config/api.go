package config

import (
	"strings"
	"time"
)

const (
	defaultAPIURL     = "http://localhost:8000/api"
	defaultAPITimeout = 10 * time.Second
	maxAPITimeout     = 2 * time.Minute
)

// APIConfig contains reservation backend configuration.
type APIConfig struct {
	// URL is the base URL every REST path is joined onto.
	URL string `env:"API_URL" envDefault:"http://localhost:8000/api"`

	// Timeout bounds each request. There are no retries.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.URL = strings.TrimRight(strings.TrimSpace(a.URL), "/")
	if a.URL == "" {
		a.URL = defaultAPIURL
	}
	if a.Timeout <= 0 {
		a.Timeout = defaultAPITimeout
	}
	if a.Timeout > maxAPITimeout {
		a.Timeout = maxAPITimeout
	}
}
