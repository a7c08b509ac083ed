package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/studycoach/studycoach/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Port, config.DefaultPort)
	}
	if cfg.Provider != "groq" {
		t.Errorf("provider = %q, want groq", cfg.Provider)
	}
	if cfg.MaxIterations != config.DefaultMaxIterations {
		t.Errorf("max iterations = %d, want %d", cfg.MaxIterations, config.DefaultMaxIterations)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STUDYCOACH_PORT", "9999")
	t.Setenv("STUDYCOACH_PROVIDER", "anthropic")
	t.Setenv("STUDYCOACH_MODEL", "claude-sonnet-4-6")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("ENABLE_AUTH", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Port)
	}
	if cfg.Provider != "anthropic" || cfg.Model != "claude-sonnet-4-6" {
		t.Errorf("provider/model overrides not applied: %q %q", cfg.Provider, cfg.Model)
	}
	if cfg.AnthropicAPIKey != "test-key" {
		t.Error("ANTHROPIC_API_KEY override not applied")
	}
	if cfg.EnableAuth {
		t.Error("ENABLE_AUTH=false not applied")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should validate with anthropic key set: %v", err)
	}
}

func TestValidateMissingCredential(t *testing.T) {
	cfg := &config.Config{Provider: "groq", Port: 7860}
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing GROQ_API_KEY must be a startup error")
	}

	cfg = &config.Config{Provider: "anthropic", Port: 7860}
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing ANTHROPIC_API_KEY must be a startup error")
	}

	cfg = &config.Config{Provider: "watsonx", Port: 7860}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown provider must be a startup error")
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"port": 8081, "provider": "anthropic", "anthropic_api_key": "file-key"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("STUDYCOACH_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8081 || cfg.Provider != "anthropic" || cfg.AnthropicAPIKey != "file-key" {
		t.Errorf("config file not applied: %+v", cfg)
	}
}
