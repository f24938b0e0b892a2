// Package persistence maps the engine's aggregates onto blob-store
// keys. Each store owns one key, loads it whole, mutates in memory, and
// writes it back whole.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
)

// Blob keys. The mv_/queijaria_ prefixes are kept for compatibility
// with ledgers written by earlier releases.
const (
	KeyOrders    = "queijaria_orders"
	KeyDrafts    = "queijaria_drafts"
	KeyCart      = "mv_current_cart"
	KeyProducts  = "mv_products"
	KeyCustomers = "mv_customers"
)

// loadJSON reads and decodes the blob under key into out. A missing
// key leaves out untouched and returns false.
func loadJSON(ctx context.Context, store blobstore.Store, key string, out any) (bool, error) {
	data, err := store.Get(ctx, key)
	if errors.Is(err, blobstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decoding blob %s: %w", key, err)
	}
	return true, nil
}

// saveJSON encodes v and writes it under key
func saveJSON(ctx context.Context, store blobstore.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding blob %s: %w", key, err)
	}
	return store.Put(ctx, key, data)
}
