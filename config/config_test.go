package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "catalog.db", cfg.DatabaseURL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://user:pw@localhost:5432/catalog")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://user:pw@localhost:5432/catalog", cfg.DatabaseURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	assert.Equal(t, slog.LevelInfo, Load().LogLevel)
}
