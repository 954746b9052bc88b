package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("LLM_TEMPERATURE", "")
	t.Setenv("CONSCIOUSDAY_DB", "")

	cfg := Load()
	if cfg.APIKey != "" {
		t.Errorf("expected empty api key, got %q", cfg.APIKey)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("expected default model %q, got %q", DefaultModel, cfg.Model)
	}
	if cfg.Temperature != DefaultTemperature {
		t.Errorf("expected default temperature %v, got %v", DefaultTemperature, cfg.Temperature)
	}
	if cfg.DBPath == "" {
		t.Error("expected a default db path")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "https://openrouter.ai/api/v1")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("LLM_TEMPERATURE", "0.2")
	t.Setenv("CONSCIOUSDAY_DB", "/tmp/journal.db")

	cfg := Load()
	if cfg.APIKey != "sk-test" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
	if cfg.BaseURL != "https://openrouter.ai/api/v1" {
		t.Errorf("base url: got %q", cfg.BaseURL)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("model: got %q", cfg.Model)
	}
	if cfg.Temperature != 0.2 {
		t.Errorf("temperature: got %v", cfg.Temperature)
	}
	if cfg.DBPath != "/tmp/journal.db" {
		t.Errorf("db path: got %q", cfg.DBPath)
	}
}

func TestLoadBadTemperatureFallsBack(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "warm")

	cfg := Load()
	if cfg.Temperature != DefaultTemperature {
		t.Errorf("expected fallback temperature %v, got %v", DefaultTemperature, cfg.Temperature)
	}
}
