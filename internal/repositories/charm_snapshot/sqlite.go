package charmsnapshot

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/charm-tracker/internal/errors"
	"github.com/KirkDiggler/charm-tracker/internal/pkg/clock"
)

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS charm_snapshots (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

	sqliteUpsert = `INSERT INTO charm_snapshots (key, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`

	sqliteSelect = `SELECT payload FROM charm_snapshots WHERE key = ?`

	timeFormat = time.RFC3339Nano
)

// SQLiteConfig contains configuration for the SQLite snapshot repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" keeps it in process
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("database path is required")
	}
	return nil
}

// SQLiteRepository stores snapshots in a single SQLite table
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens (creating if needed) the database and its table
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(dsn) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	// one connection keeps ":memory:" databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create snapshot table")
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load reads the snapshot stored under the key
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	var payload []byte
	err := r.db.QueryRowContext(ctx, sqliteSelect, input.Key).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("snapshot %s not found", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read snapshot %s", input.Key)
	}

	charms, err := decode(input.Key, payload)
	if err != nil {
		return nil, err
	}
	return &LoadOutput{Charms: charms}, nil
}

// Save upserts the snapshot stored under the key
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	data, err := encode(input.Charms)
	if err != nil {
		return nil, err
	}

	updatedAt := r.clock.Now().UTC().Format(timeFormat)
	if _, err := r.db.ExecContext(ctx, sqliteUpsert, input.Key, data, updatedAt); err != nil {
		return nil, errors.Wrapf(err, "failed to save snapshot %s", input.Key)
	}

	return &SaveOutput{Bytes: len(data)}, nil
}
