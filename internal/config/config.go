package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	APIPrefix   string `json:"api_prefix"`
	LogLevel    string `json:"log_level"`

	// CORS
	CORSOrigins []string `json:"cors_origins"`

	// Auth
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// AI / LLM
	Provider         string `json:"provider"` // "groq" | "anthropic"
	GroqAPIKey       string `json:"groq_api_key"`
	GroqBaseURL      string `json:"groq_base_url"`
	AnthropicAPIKey  string `json:"anthropic_api_key"`
	AnthropicBaseURL string `json:"anthropic_base_url"`
	Model            string `json:"model"`
	AgentTimeout     int    `json:"agent_timeout"`
	MaxIterations    int    `json:"max_iterations"`

	// Syllabus
	SyllabusPath string `json:"syllabus_path"` // optional JSON catalog override

	// Audit
	EnableAuditLogging bool `json:"enable_audit_logging"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Environment:        DefaultEnvironment,
		APIPrefix:          DefaultAPIPrefix,
		LogLevel:           DefaultLogLevel,
		CORSOrigins:        DefaultCORSOrigins,
		APIKeyHeader:       "X-API-Key",
		EnableAuth:         true,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		Provider:           DefaultProvider,
		AgentTimeout:       DefaultAgentTimeout,
		MaxIterations:      DefaultMaxIterations,
		EnableAuditLogging: true,
	}

	// Load from JSON config file if specified
	if path := getEnv("STUDYCOACH_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

// Validate reports startup-fatal problems. A missing credential for the
// selected provider must fail here, not on the first request.
func (c *Config) Validate() error {
	switch c.Provider {
	case "groq":
		if c.GroqAPIKey == "" {
			return fmt.Errorf("provider is %q but GROQ_API_KEY is not set", c.Provider)
		}
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("provider is %q but ANTHROPIC_API_KEY is not set", c.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q (expected \"groq\" or \"anthropic\")", c.Provider)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("STUDYCOACH_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("STUDYCOACH_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("STUDYCOACH_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("STUDYCOACH_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("STUDYCOACH_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
	}
	if v := getEnv("STUDYCOACH_PROVIDER", ""); v != "" {
		cfg.Provider = v
	}
	if v := getEnv("STUDYCOACH_MODEL", ""); v != "" {
		cfg.Model = v
	}
	if v := getEnv("STUDYCOACH_SYLLABUS", ""); v != "" {
		cfg.SyllabusPath = v
	}
	if v := getEnv("GROQ_API_KEY", ""); v != "" {
		cfg.GroqAPIKey = v
	}
	if v := getEnv("GROQ_BASE_URL", ""); v != "" {
		cfg.GroqBaseURL = v
	}
	if v := getEnv("ANTHROPIC_API_KEY", ""); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := getEnv("ANTHROPIC_BASE_URL", ""); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("STUDYCOACH_AGENT_TIMEOUT", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.AgentTimeout = t
		}
	}
	if v := getEnv("STUDYCOACH_MAX_ITERATIONS", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxIterations = n
		}
	}
	if v := getEnv("ENABLE_AUDIT_LOGGING", ""); v != "" {
		cfg.EnableAuditLogging = v == "true" || v == "1"
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
