package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/afaq-khan2000/auto-skeleton/skeleton"
	_ "modernc.org/sqlite"
)

// Store is a persistent key → GenerationResult backend.
type Store interface {
	Get(ctx context.Context, key string) (*skeleton.GenerationResult, error)
	Put(ctx context.Context, key string, res *skeleton.GenerationResult) error
	Delete(ctx context.Context, key string) error
	Close() error
}

const schema = `
CREATE TABLE IF NOT EXISTS skeleton_cache (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

// SQLStore persists generation results in SQLite, JSON-encoded. Import
// modernc.org/sqlite for the driver.
type SQLStore struct {
	db *sql.DB
}

// OpenSQL opens (creating if needed) the cache table on an SQLite file.
func OpenSQL(path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 10000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: schema: %w", err)
	}
	return &SQLStore{db: db}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (*skeleton.GenerationResult, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM skeleton_cache WHERE key = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var res skeleton.GenerationResult
	if err := json.Unmarshal(payload, &res); err != nil {
		return nil, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return &res, nil
}

func (s *SQLStore) Put(ctx context.Context, key string, res *skeleton.GenerationResult) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO skeleton_cache (key, payload, updated_at) VALUES (?,?,?)
		ON CONFLICT(key) DO UPDATE SET payload = excluded.payload,
			updated_at = excluded.updated_at`,
		key, payload, time.Now().UnixMilli())
	return err
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM skeleton_cache WHERE key = ?`, key)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
