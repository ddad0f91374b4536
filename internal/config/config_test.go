package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INTERVET_BACKEND_URL", "")
	t.Setenv("INTERVET_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BackendURL != DefaultBackendURL {
		t.Errorf("backend URL = %q, want %q", cfg.BackendURL, DefaultBackendURL)
	}
	if cfg.DBPath != "" {
		t.Errorf("db path = %q, want empty", cfg.DBPath)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("INTERVET_BACKEND_URL", "http://localhost:8000/")
	t.Setenv("INTERVET_DB", "/tmp/intervet-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// Trailing slash stripped so client paths join cleanly.
	if cfg.BackendURL != "http://localhost:8000" {
		t.Errorf("backend URL = %q, want %q", cfg.BackendURL, "http://localhost:8000")
	}
	if cfg.DBPath != "/tmp/intervet-test.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
}

func TestLoadRejectsBadURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"no scheme", "localhost:8000"},
		{"bad scheme", "ftp://example.com"},
		{"no host", "http://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("INTERVET_BACKEND_URL", tt.url)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %q", tt.url)
			}
		})
	}
}
