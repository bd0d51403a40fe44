package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	DatabaseURL     string
	SessionStore    string
	SessionTTL      time.Duration
	CORSAllowOrigin []string
	StaticDir       string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	return Config{
		Port:            getEnv("PORT", "3000"),
		Env:             env,
		DatabaseURL:     dbURL,
		SessionStore:    normalizeSessionStore(getEnv("SESSION_STORE", "postgres"), dbURL),
		SessionTTL:      getEnvDuration("SESSION_TTL", 24*time.Hour),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		StaticDir:       getEnv("STATIC_DIR", "./client/dist"),
	}
}

// IsProduction reports whether the app runs with production hardening
// (secure cookies, strict same-site, SPA fallback).
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate rejects configurations the server must not start with. In
// production the in-memory stores are not an acceptable fallback, so a
// database is mandatory.
func (c Config) Validate() error {
	if c.IsProduction() && strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required in production")
	}
	return nil
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	val, err := time.ParseDuration(raw)
	if err != nil || val <= 0 {
		log.Printf("config env %s invalid duration %q, using %s", key, raw, def)
		return def
	}
	return val
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
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeSessionStore(raw, dbURL string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "memory":
		return "memory"
	case "postgres", "pg":
		if dbURL == "" {
			return "memory"
		}
		return "postgres"
	default:
		if dbURL == "" {
			return "memory"
		}
		return "postgres"
	}
}
