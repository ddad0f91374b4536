// Package config resolves process-wide settings once at startup.
// Nothing else in the codebase reads the environment for these values;
// the resolved Config is injected into the components that need it.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultBackendURL is the hosted assessment backend used when no
// override is configured.
const DefaultBackendURL = "https://intervet-backend.onrender.com"

// Config holds the resolved runtime settings.
type Config struct {
	// BackendURL is the base URL of the assessment backend, without a
	// trailing slash.
	BackendURL string

	// DBPath is the SQLite file for the local attempt-history log.
	// Empty means use the default data directory.
	DBPath string
}

// Load reads .env (if present) and the environment, and returns the
// resolved Config. Call it once in main; pass the result down.
func Load() (Config, error) {
	// Missing .env is fine; a malformed one is not.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		BackendURL: DefaultBackendURL,
		DBPath:     os.Getenv("INTERVET_DB"),
	}

	if u := os.Getenv("INTERVET_BACKEND_URL"); u != "" {
		cfg.BackendURL = u
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid backend URL %q: %w", c.BackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL %q must be http or https", c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("backend URL %q has no host", c.BackendURL)
	}
	return nil
}
