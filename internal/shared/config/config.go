package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string
	DefaultProvider string
	FreeTierLimit   int
}

// ProviderConfig describes one LLM backend: the model it runs, the
// environment variable holding its key, and the sampling temperature.
type ProviderConfig struct {
	Name        string
	Model       string
	APIKeyEnv   string
	Temperature float32
}

// DefaultFreeTierLimit is the number of tailoring calls allowed per session
// without a caller-supplied key.
const DefaultFreeTierLimit = 3

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		DefaultProvider: strings.ToLower(getEnv("LLM_PROVIDER", "google")),
		FreeTierLimit:   getEnvInt("FREE_TIER_MAX_REQUESTS", DefaultFreeTierLimit),
	}
}

// Providers returns the static provider table. Model overrides come from
// <PROVIDER>_MODEL environment variables.
func Providers() map[string]ProviderConfig {
	return map[string]ProviderConfig{
		"google": {
			Name:        "google",
			Model:       getEnv("GOOGLE_MODEL", "gemini-2.0-flash"),
			APIKeyEnv:   "GEMINI_API_KEY",
			Temperature: 0.2,
		},
		"openai": {
			Name:        "openai",
			Model:       getEnv("OPENAI_MODEL", "gpt-4o"),
			APIKeyEnv:   "OPENAI_API_KEY",
			Temperature: 0.2,
		},
		"anthropic": {
			Name:        "anthropic",
			Model:       getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-latest"),
			APIKeyEnv:   "ANTHROPIC_API_KEY",
			Temperature: 0.2,
		},
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
