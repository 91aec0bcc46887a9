// Package config loads charm-tracker settings from the environment.
// Command-line flags are layered on top by the CLI.
package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	charmsnapshot "github.com/KirkDiggler/charm-tracker/internal/repositories/charm_snapshot"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Backends lists every accepted backend name
var Backends = []string{BackendMemory, BackendSQLite, BackendRedis}

// Config holds runtime settings
type Config struct {
	Backend     string `env:"CHARMS_BACKEND"      envDefault:"sqlite"`
	DBPath      string `env:"CHARMS_DB_PATH"`
	RedisAddr   string `env:"CHARMS_REDIS_ADDR"   envDefault:"localhost:6379"`
	SnapshotKey string `env:"CHARMS_SNAPSHOT_KEY" envDefault:"charmsData"`
	// CatalogPath points at a YAML skill catalog; empty uses the built-in one
	CatalogPath string `env:"CHARMS_CATALOG"`
	Verbose     bool   `env:"CHARMS_VERBOSE"`
}

// Load parses the environment and fills derived defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}

	return cfg, nil
}

// DefaultDBPath returns charms.db under the user config directory, falling
// back to the working directory when there is none.
func DefaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "charms.db"
	}
	return filepath.Join(dir, "charm-tracker", "charms.db")
}

// Validate checks the settings the selected backend needs
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("backend", c.Backend, Backends, vb)
	errors.ValidateRequired("snapshot_key", c.SnapshotKey, vb)

	switch c.Backend {
	case BackendSQLite:
		errors.ValidateRequired("db_path", c.DBPath, vb)
	case BackendRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	}

	return vb.Build()
}

// SnapshotKeyOrDefault returns the configured key, or the repository default
func (c *Config) SnapshotKeyOrDefault() string {
	if c.SnapshotKey == "" {
		return charmsnapshot.DefaultKey
	}
	return c.SnapshotKey
}
