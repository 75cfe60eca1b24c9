// Package sqlitekv persists the entity collections as JSON values in a
// single SQLite key-value table, one fixed key per collection. Every flush
// rewrites a collection whole; SetMulti commits several collections in one
// SQL transaction for the cross-collection cascades.
package sqlitekv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
)

// Store implements the get/set/clear contract of the persistence service
// over a SQLite table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the stored bytes for key, or apperrors.ErrNotFound when the
// key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Set writes the bytes for key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, upsertQuery, key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// SetMulti writes every entry inside one transaction; either all keys are
// updated or none are.
func (s *Store) SetMulti(ctx context.Context, entries map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin batch write: %w", err)
	}
	defer tx.Rollback()

	for key, value := range entries {
		if _, err := tx.ExecContext(ctx, upsertQuery, key, value); err != nil {
			return fmt.Errorf("failed to write key %s in batch: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch write: %w", err)
	}
	return nil
}

// Clear erases every key.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv;`); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

const upsertQuery = `
	INSERT INTO kv (key, value, updated_at)
	VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	ON CONFLICT (key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at;
`
