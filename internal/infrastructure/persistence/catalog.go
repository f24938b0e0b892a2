package persistence

import (
	"context"
	"sync"

	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
)

// CatalogStore persists the product catalog as one blob
type CatalogStore struct {
	store blobstore.Store

	mu       sync.RWMutex
	products []*catalog.Product
}

// NewCatalogStore creates a catalog store backed by the given blob
// store
func NewCatalogStore(store blobstore.Store) *CatalogStore {
	return &CatalogStore{store: store}
}

// Load reads the catalog blob. Returns found=false when the blob has
// never been written, so the caller can seed defaults.
func (s *CatalogStore) Load(ctx context.Context) (bool, error) {
	var products []*catalog.Product
	found, err := loadJSON(ctx, s.store, KeyProducts, &products)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return found, nil
}

// Save replaces the catalog and persists it
func (s *CatalogStore) Save(ctx context.Context, products []*catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveJSON(ctx, s.store, KeyProducts, products); err != nil {
		return err
	}
	s.products = products
	return nil
}

// List returns the catalog in stored order
func (s *CatalogStore) List() []*catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*catalog.Product(nil), s.products...)
}

// Find returns the product with the given id
func (s *CatalogStore) Find(id string) (*catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
