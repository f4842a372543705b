// Package config loads environment-driven settings, with .env support
// for local development.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SyncDisabled = "disabled"
	SyncHTTP     = "http"
	SyncPostgres = "postgres"
)

type Config struct {
	DBPath   string
	LogLevel string

	SyncBackend  string
	SyncBaseURL  string
	SyncToken    string
	PostgresDSN  string
	SyncDebounce time.Duration

	ListenAddr            string
	FatSecretClientID     string
	FatSecretClientSecret string
	SearchBaseURL         string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBPath:       getEnv("HEALTHOS_DB", defaultDBPath()),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SyncBackend:  getEnv("SYNC_BACKEND", SyncDisabled),
		SyncBaseURL:  getEnv("SYNC_BASE_URL", ""),
		SyncToken:    getEnv("SYNC_TOKEN", ""),
		PostgresDSN:  getEnv("POSTGRES_DSN", ""),
		SyncDebounce: getDurationEnv("SYNC_DEBOUNCE_MS", 2000),

		ListenAddr:            getEnv("LISTEN_ADDR", ":8080"),
		FatSecretClientID:     getEnv("FATSECRET_CLIENT_ID", ""),
		FatSecretClientSecret: getEnv("FATSECRET_CLIENT_SECRET", ""),
		SearchBaseURL:         getEnv("SEARCH_BASE_URL", "http://localhost:8080"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.SyncBackend {
	case SyncDisabled:
	case SyncHTTP:
		if c.SyncBaseURL == "" {
			return errors.New("SYNC_BASE_URL is required when SYNC_BACKEND=http")
		}
	case SyncPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when SYNC_BACKEND=postgres")
		}
	default:
		return errors.New("SYNC_BACKEND must be one of: disabled, http, postgres")
	}
	if c.DBPath == "" {
		return errors.New("HEALTHOS_DB must not be empty")
	}
	return nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "healthos.db"
	}
	return filepath.Join(home, ".healthos", "healthos.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallbackMs int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(fallbackMs) * time.Millisecond
}
