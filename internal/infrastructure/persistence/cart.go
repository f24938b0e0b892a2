package persistence

import (
	"context"

	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
)

// CartStore persists the single active cart so an interrupted session
// resumes where it left off.
type CartStore struct {
	store blobstore.Store
}

// NewCartStore creates a cart store backed by the given blob store
func NewCartStore(store blobstore.Store) *CartStore {
	return &CartStore{store: store}
}

// Load reads the persisted cart lines. A missing blob means an empty
// cart.
func (s *CartStore) Load(ctx context.Context) ([]sales.CartLine, error) {
	var lines []sales.CartLine
	if _, err := loadJSON(ctx, s.store, KeyCart, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save persists the cart lines, replacing the previous snapshot
func (s *CartStore) Save(ctx context.Context, lines []sales.CartLine) error {
	if lines == nil {
		lines = []sales.CartLine{}
	}
	return saveJSON(ctx, s.store, KeyCart, lines)
}
