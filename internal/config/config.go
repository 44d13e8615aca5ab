package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables. It is the single source of truth for runtime parameters.
type Config struct {
	Port          string
	Env           string
	SessionSecret string
	SessionTTL    time.Duration
	TemplatesGlob string
}

// Load reads configuration from environment variables. If a .env file exists
// in the working directory, it is loaded first. It returns a populated Config
// or an error with a human-friendly message.
func Load() (*Config, error) {
	// Load .env if present; ignore error if the file is missing so that
	// environments relying solely on real environment variables keep working.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.Port = getEnv("PORT", "3001")
	cfg.Env = getEnv("ENV", "development")

	// The session token never gates access, so a dev default is acceptable
	// outside production.
	cfg.SessionSecret = getEnv("SESSION_SECRET", "petmart-dev-secret")
	if cfg.Env == "production" && cfg.SessionSecret == "petmart-dev-secret" {
		return nil, fmt.Errorf("SESSION_SECRET must be set in production")
	}

	var err error
	if cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", "24h"); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg.TemplatesGlob = getEnv("TEMPLATES_GLOB", "web/templates/*.html")

	return cfg, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseDurationEnv reads an environment variable and parses it as a
// time.Duration, falling back to the provided default when unset.
func parseDurationEnv(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be > 0")
	}
	return d, nil
}
