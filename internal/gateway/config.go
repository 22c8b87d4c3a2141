package gateway

import (
	"os"
	"strconv"
)

// Config holds the settings for the gateway client.
type Config struct {
	BaseURL        string
	TimeoutMs      int
	LogCalls       bool
	StatsCacheSize int
}

// DefaultConfig returns a Config with sensible defaults for a locally
// running planning service.
func DefaultConfig() Config {
	return Config{
		BaseURL:        "http://localhost:8000",
		TimeoutMs:      10000,
		LogCalls:       false,
		StatsCacheSize: 64,
	}
}

// LoadConfig reads gateway configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("LACHESIS_API_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LACHESIS_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("LACHESIS_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("LACHESIS_STATS_CACHE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StatsCacheSize = n
		}
	}

	return cfg
}
