package config

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "csv", cfg.StorageBackend)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 30*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.SecureCookie)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("SQLITE_DB_PATH", "/tmp/x.db")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("SECURE_COOKIE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.StorageBackend)
	assert.Equal(t, "/tmp/x.db", cfg.SQLiteDBPath)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.SecureCookie)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := Load()
	cfg.DataDir = filepath.Join(t.TempDir(), "data")
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "non-numeric port",
			mutate:  func(c *Config) { c.Port = "http" },
			wantMsg: "invalid port",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Port = "70000" },
			wantMsg: "invalid port",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.StorageBackend = "redis" },
			wantMsg: "invalid storage backend",
		},
		{
			name:    "tiny session ttl",
			mutate:  func(c *Config) { c.SessionTTL = time.Second },
			wantMsg: "invalid session TTL",
		},
		{
			name: "empty sqlite path",
			mutate: func(c *Config) {
				c.StorageBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantMsg: "sqlite database path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			cfg.DataDir = t.TempDir()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Load()
	cfg.Port = "http"
	cfg.StorageBackend = "redis"
	cfg.SessionTTL = time.Second

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port")
	assert.Contains(t, err.Error(), "invalid storage backend")
	assert.Contains(t, err.Error(), "invalid session TTL")
}
