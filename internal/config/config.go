// Package config reads application configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"resumefit-backend/internal/shared/telemetry"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	// TaxonomyFile optionally replaces the built-in skill taxonomy tables.
	TaxonomyFile string

	// LLMProvider selects the optional remote scorer ("" or "openai").
	LLMProvider   string
	OpenAIAPIKey  string
	LLMModel      string
	OpenAITimeout time.Duration
}

// Load reads configuration from environment variables, after best-effort
// loading of .env files for local development.
func Load() Config {
	loadEnvFiles(".env", ".env.local")

	env := normalizeEnv(getEnv("ENV", "development"))
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))

	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		Env:             env,
		CORSAllowOrigin: splitList(os.Getenv("CORS_ALLOW_ORIGIN")),
		TaxonomyFile:    os.Getenv("TAXONOMY_FILE"),
		LLMProvider:     provider,
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OpenAITimeout:   timeoutFromEnv("OPENAI_TIMEOUT_SECONDS"),
	}

	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey == "" {
		if env == "production" {
			log.Fatal("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		telemetry.Warn("config.llm_disabled", map[string]any{
			"reason": "LLM_PROVIDER=openai but OPENAI_API_KEY is empty; running heuristic-only",
		})
		cfg.LLMProvider = ""
	}

	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "development"
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func timeoutFromEnv(key string) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return 0
	}
	return time.Duration(parsed) * time.Second
}
