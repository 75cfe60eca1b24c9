package sqlitekv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/typoapparel/tbm_backend/internal/apperrors"
)

// Fixed storage keys, one per collection plus the profile and theme. These
// mirror the client's local-storage keys and must not change: backups and
// stores written by earlier releases use them.
const (
	keyTransactions = "typo_transactions"
	keyInventory    = "typo_inventory"
	keyCustomers    = "typo_customers"
	keyProfile      = "typo_profile"
	keyTheme        = "typo_theme"
)

// BaseRepository provides the JSON-over-KV plumbing shared by all
// repositories.
type BaseRepository struct {
	Store *Store
}

// getJSON reads and unmarshals the value under key into v. ErrNotFound
// passes through untouched so callers can treat absence as empty.
func (r *BaseRepository) getJSON(ctx context.Context, key string, v any) error {
	raw, err := r.Store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// putJSON marshals v and flushes it under key.
func (r *BaseRepository) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.Store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to flush %s: %w", key, err)
	}
	return nil
}
