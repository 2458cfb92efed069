package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Store is a sqlite-backed response cache. Entries carry their own expiry;
// geocode, forecast, and extended data have independent TTLs set by the
// caller. The cache is a memoization layer only: every reader treats a miss,
// an expired row, and a storage error identically.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "Initial schema",
		SQL: `
CREATE TABLE IF NOT EXISTS response_cache (
    kind TEXT NOT NULL,
    cache_key TEXT NOT NULL,
    payload TEXT NOT NULL,
    expires_at DATETIME NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (kind, cache_key)
);

CREATE INDEX IF NOT EXISTS idx_response_cache_expires ON response_cache(expires_at);
`,
	},
}

// Migrate applies schema migrations in order, tracking the applied version
// in a schema_migrations table.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := s.db.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		if _, err := s.db.Exec(m.SQL); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Description, err)
		}
		if _, err := s.db.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.Version); err != nil {
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

// Put stores a JSON-encoded value under (kind, key) with the given TTL,
// replacing any previous entry.
func (s *Store) Put(kind, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache payload: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO response_cache (kind, cache_key, payload, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(kind, cache_key) DO UPDATE SET
			payload = excluded.payload,
			expires_at = excluded.expires_at,
			created_at = CURRENT_TIMESTAMP
	`, kind, key, string(payload), time.Now().Add(ttl).UTC())
	return err
}

// Get loads the entry under (kind, key) into out. The second return value
// reports whether a live entry was found; expired rows are treated as
// misses and removed opportunistically.
func (s *Store) Get(kind, key string, out any) (bool, error) {
	var payload string
	var expiresAt time.Time
	err := s.db.QueryRow(`
		SELECT payload, expires_at FROM response_cache
		WHERE kind = ? AND cache_key = ?
	`, kind, key).Scan(&payload, &expiresAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if time.Now().After(expiresAt) {
		_, _ = s.db.Exec(`DELETE FROM response_cache WHERE kind = ? AND cache_key = ?`, kind, key)
		return false, nil
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return false, fmt.Errorf("decode cache payload: %w", err)
	}
	return true, nil
}

// PruneExpired removes stale rows. Called opportunistically; the cache
// stays correct without it since Get checks expiry.
func (s *Store) PruneExpired() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM response_cache WHERE expires_at < ?`, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
