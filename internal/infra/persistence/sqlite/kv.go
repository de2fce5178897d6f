// Package sqlite implements the persistence layer on an embedded,
// cgo-free sqlite database used as a durable local key-value store.
package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"go.uber.org/fx"
	_ "modernc.org/sqlite"

	"cardbox/config"
	"cardbox/internal/errors"
)

// KV is a minimal durable key-value store: one table, one value per key.
// Writes are committed synchronously, so an acknowledged Put survives a
// crash of the process.
type KV struct {
	db *sql.DB
}

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// NewKV opens the configured store and registers its shutdown hook.
func NewKV(params Params) (*KV, error) {
	kv, err := OpenKV(params.Config.Storage.Path)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return kv.Close()
		},
	})

	return kv, nil
}

// OpenKV creates or opens a key-value store at path, creating parent
// directories as needed.
func OpenKV(path string) (*KV, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open storage database")
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()

		return nil, errors.Wrap(err, "failed to initialize storage schema")
	}

	return &KV{db: db}, nil
}

// Close closes the underlying database.
func (s *KV) Close() error {
	return errors.Wrap(s.db.Close(), "failed to close storage database")
}

// Get returns the value stored under key, with ok=false when absent.
func (s *KV) Get(ctx context.Context, key string) (value []byte, ok bool, err error) {
	var raw string
	err = s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to read key %q", key)
	}

	return []byte(raw), true, nil
}

// Put durably stores value under key, replacing any previous value.
func (s *KV) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(value))

	return errors.Wrapf(err, "failed to write key %q", key)
}

// Delete removes the value stored under key, if any.
func (s *KV) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)

	return errors.Wrapf(err, "failed to delete key %q", key)
}
