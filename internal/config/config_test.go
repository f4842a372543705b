package config_test

import (
	"testing"
	"time"

	"github.com/Artemoon13/health-os/internal/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{"disabled", config.Config{DBPath: "x.db", SyncBackend: config.SyncDisabled}, false},
		{"http with url", config.Config{DBPath: "x.db", SyncBackend: config.SyncHTTP, SyncBaseURL: "https://sync.example.com"}, false},
		{"http without url", config.Config{DBPath: "x.db", SyncBackend: config.SyncHTTP}, true},
		{"postgres with dsn", config.Config{DBPath: "x.db", SyncBackend: config.SyncPostgres, PostgresDSN: "postgres://localhost/healthos"}, false},
		{"postgres without dsn", config.Config{DBPath: "x.db", SyncBackend: config.SyncPostgres}, true},
		{"unknown backend", config.Config{DBPath: "x.db", SyncBackend: "ftp"}, true},
		{"empty db path", config.Config{SyncBackend: config.SyncDisabled}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected an error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	// Not parallel: Load reads process env.
	t.Setenv("SYNC_BACKEND", "")
	t.Setenv("HEALTHOS_DB", "")
	t.Setenv("SYNC_DEBOUNCE_MS", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SyncBackend != config.SyncDisabled {
		t.Fatalf("backend = %q, want disabled", cfg.SyncBackend)
	}
	if cfg.DBPath == "" {
		t.Fatalf("db path is empty")
	}
	if cfg.SyncDebounce != 2*time.Second {
		t.Fatalf("debounce = %v, want 2s", cfg.SyncDebounce)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HEALTHOS_DB", "/tmp/custom.db")
	t.Setenv("SYNC_BACKEND", "http")
	t.Setenv("SYNC_BASE_URL", "https://sync.example.com")
	t.Setenv("SYNC_DEBOUNCE_MS", "500")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.SyncBackend != config.SyncHTTP || cfg.SyncBaseURL != "https://sync.example.com" {
		t.Fatalf("sync config = %q %q", cfg.SyncBackend, cfg.SyncBaseURL)
	}
	if cfg.SyncDebounce != 500*time.Millisecond {
		t.Fatalf("debounce = %v, want 500ms", cfg.SyncDebounce)
	}
}

func TestLoadBadDebounceFallsBack(t *testing.T) {
	t.Setenv("SYNC_BACKEND", "")
	t.Setenv("SYNC_DEBOUNCE_MS", "not-a-number")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.SyncDebounce != 2*time.Second {
		t.Fatalf("debounce = %v, want the 2s default", cfg.SyncDebounce)
	}
}
