// Package config loads process configuration from the environment. It is
// read once at startup and passed down explicitly; nothing else in the
// program touches the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// DefaultModel is used when LLM_MODEL is unset.
const DefaultModel = "gpt-4o-mini"

// DefaultTemperature is used when LLM_TEMPERATURE is unset or unparsable.
const DefaultTemperature = 0.7

// Config holds all environment-sourced settings. Immutable after Load.
type Config struct {
	// APIKey is the provider credential. Empty means no credential is
	// configured and the agent refuses to call out.
	APIKey string

	// BaseURL optionally points the client at an OpenAI-compatible
	// endpoint (e.g. OpenRouter). Empty means the provider default.
	BaseURL string

	// Model is the completion model identifier.
	Model string

	// Temperature is the sampling temperature for completions.
	Temperature float64

	// DBPath is the SQLite database location.
	DBPath string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloatEnv(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// Load reads all env vars and builds the config.
func Load() Config {
	return Config{
		APIKey:      getEnv("OPENAI_API_KEY", ""),
		BaseURL:     getEnv("OPENAI_BASE_URL", ""),
		Model:       getEnv("LLM_MODEL", DefaultModel),
		Temperature: getFloatEnv("LLM_TEMPERATURE", DefaultTemperature),
		DBPath:      getEnv("CONSCIOUSDAY_DB", defaultDBPath()),
	}
}

func defaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".consciousday", "entries.db")
}
