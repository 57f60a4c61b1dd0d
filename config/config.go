// Package config loads client configuration from the environment,
// optionally seeded from a .env file.
//
// A host application typically wires the module up in this order: Load the
// config, db.Open the store path and db.EnsureSchema it, wrap the handle in
// store.NewSQLite (and store.NewSealed when SealKey is set), then build
// api.NewClient, session.NewManager, gateway.NewClient, and
// notify.NewRegistry on top of that backend.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the corresponding variable is unset.
const (
	DefaultAPIURL      = "http://localhost:8000"
	DefaultStorePath   = "evomarket.db"
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds the runtime settings of the client.
type Config struct {
	// APIURL is the origin of the marketplace API.
	APIURL string

	// StorePath is the path of the local sqlite store. ":memory:" keeps
	// all state in memory for the process lifetime.
	StorePath string

	// HTTPTimeout bounds every remote request.
	HTTPTimeout time.Duration

	// SealKey, when non-empty, enables at-rest encryption of stored
	// tokens.
	SealKey []byte
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present; real environment
// variables take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env file: %w", err)
	}

	cfg := &Config{
		APIURL:      envOr("EVOMARKET_API_URL", DefaultAPIURL),
		StorePath:   envOr("EVOMARKET_STORE_PATH", DefaultStorePath),
		HTTPTimeout: DefaultHTTPTimeout,
	}

	if timeout := os.Getenv("EVOMARKET_HTTP_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing EVOMARKET_HTTP_TIMEOUT: %w", err)
		}
		cfg.HTTPTimeout = d
	}

	if key := os.Getenv("EVOMARKET_SEAL_KEY"); key != "" {
		cfg.SealKey = []byte(key)
	}

	return cfg, nil
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}
