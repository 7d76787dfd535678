package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	// HTTP server
	Port         string
	SecureCookie bool

	// Storage
	StorageBackend string
	DataDir        string
	SQLiteDBPath   string

	// Sessions
	SessionTTL time.Duration

	// Logging
	LogLevel slog.Level
}

// Load reads configuration from the environment with defaults.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		SecureCookie: getEnvBool("SECURE_COOKIE", false),

		StorageBackend: getEnv("STORAGE_BACKEND", "csv"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/finance.db"),

		SessionTTL: getEnvDuration("SESSION_TTL", 30*24*time.Hour),

		LogLevel: parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// Validate checks the configuration and returns a combined error listing
// everything wrong with it.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.StorageBackend {
	case "csv":
		if c.DataDir == "" {
			errs = append(errs, "data directory cannot be empty when using csv backend")
		} else if err := os.MkdirAll(c.DataDir, 0o755); err != nil {
			errs = append(errs, fmt.Sprintf("cannot create data directory %q: %v", c.DataDir, err))
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errs = append(errs, "sqlite database path cannot be empty when using sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create sqlite directory %q: %v", dir, err))
			}
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid storage backend %q: must be one of [csv sqlite]", c.StorageBackend))
	}

	if c.SessionTTL < time.Minute {
		errs = append(errs, fmt.Sprintf("invalid session TTL %v: must be at least 1 minute", c.SessionTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
