package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config keeps runtime settings for the API.
type Config struct {
	Addr        string
	DatabaseURL string
	LogLevel    slog.Level
}

// Load reads configuration from environment variables with sane defaults.
// A missing DATABASE_URL falls back to a local SQLite file.
func Load() Config {
	cfg := Config{
		Addr:        strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogLevel:    parseLevel(strings.TrimSpace(os.Getenv("LOG_LEVEL"))),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "catalog.db"
	}

	return cfg
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
