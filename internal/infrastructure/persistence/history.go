package persistence

import (
	"context"
	"iter"
	"sync"

	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
)

// HistoryStore is the append-only order ledger. Entries are kept
// newest-first and are never updated or removed once appended; credit
// balances and statistics are derived by replaying them.
type HistoryStore struct {
	store blobstore.Store

	mu     sync.RWMutex
	orders []*sales.Order
}

// NewHistoryStore creates a ledger backed by the given blob store
func NewHistoryStore(store blobstore.Store) *HistoryStore {
	return &HistoryStore{store: store}
}

// Load reads the ledger blob. A missing blob means an empty ledger.
func (s *HistoryStore) Load(ctx context.Context) error {
	var orders []*sales.Order
	if _, err := loadJSON(ctx, s.store, KeyOrders, &orders); err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// Append prepends the order to the ledger and persists it
func (s *HistoryStore) Append(ctx context.Context, order *sales.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]*sales.Order, 0, len(s.orders)+1)
	updated = append(updated, order)
	updated = append(updated, s.orders...)

	if err := saveJSON(ctx, s.store, KeyOrders, updated); err != nil {
		return err
	}
	s.orders = updated
	return nil
}

// History yields ledger entries newest-first. The sequence is built
// over a snapshot, so it can be ranged more than once and is safe
// against concurrent appends.
func (s *HistoryStore) History() iter.Seq[*sales.Order] {
	s.mu.RLock()
	snapshot := s.orders
	s.mu.RUnlock()

	return func(yield func(*sales.Order) bool) {
		for _, order := range snapshot {
			if !yield(order) {
				return
			}
		}
	}
}

// Len returns the number of ledger entries
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
