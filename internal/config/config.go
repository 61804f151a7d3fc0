// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration values for the web server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `env:"PORT" envDefault:"8080"`

	// APIBaseURL is the root URL of the remote trip API. Required.
	APIBaseURL string `env:"API_BASE_URL"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`

	// MaxBodyBytes caps the size of form posts. Defaults to 64 KiB.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"65536"`

	// APITimeout bounds each request to the remote API.
	// Zero, the default, leaves requests to the transport defaults.
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"`

	// DisplayTimezone is the IANA zone dates are shown in. Defaults to "UTC".
	DisplayTimezone string `env:"DISPLAY_TIMEZONE" envDefault:"UTC"`

	// OTELEndpoint is the OTLP/HTTP collector traces are exported to, either
	// host:port or a URL. Empty disables export; trace context is still
	// propagated to the API.
	OTELEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// OTELInsecure sends host:port endpoints over plain HTTP.
	OTELInsecure bool `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`

	// TraceSampleRate is the fraction of new traces recorded, in (0, 1].
	TraceSampleRate float64 `env:"OTEL_TRACES_SAMPLER_RATIO" envDefault:"1"`
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}
	cfg.CORSOrigins = splitCSV(strings.Join(cfg.CORSOrigins, ","))

	var missing []string
	if cfg.APIBaseURL == "" {
		missing = append(missing, "API_BASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Config{}, fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", cfg.APIBaseURL)
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}
	if cfg.TraceSampleRate <= 0 || cfg.TraceSampleRate > 1 {
		return Config{}, fmt.Errorf("OTEL_TRACES_SAMPLER_RATIO must be in (0, 1], got %g", cfg.TraceSampleRate)
	}

	return cfg, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
