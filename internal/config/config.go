package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// DatabaseDSN selects the backing store. The default is a shared
	// in-memory sqlite database, which matches the portal's lifetime:
	// seed data exists for the process and is gone afterwards.
	DatabaseDSN string
	// StateDir is where the session boundary persists its two entries
	// (user, token). Empty means keep them in memory only.
	StateDir string
	Env      string
	LogLevel string
}

const DefaultDSN = "file:portal?mode=memory&cache=shared"

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file > default.
func Load() Config {
	_ = godotenv.Load() // optional; absence of .env is fine

	cfg := Config{}
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", DefaultDSN)
	cfg.StateDir = getEnv("STATE_DIR", "")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
