package persistence

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
)

// DraftStore holds saved quotes. Unlike the ledger, drafts are removed
// when resumed or discarded.
type DraftStore struct {
	store blobstore.Store

	mu     sync.RWMutex
	drafts []*sales.Order
}

// NewDraftStore creates a draft store backed by the given blob store
func NewDraftStore(store blobstore.Store) *DraftStore {
	return &DraftStore{store: store}
}

// Load reads the drafts blob. A missing blob means no drafts.
func (s *DraftStore) Load(ctx context.Context) error {
	var drafts []*sales.Order
	if _, err := loadJSON(ctx, s.store, KeyDrafts, &drafts); err != nil {
		return err
	}
	s.mu.Lock()
	s.drafts = drafts
	s.mu.Unlock()
	return nil
}

// Add prepends the draft and persists the collection
func (s *DraftStore) Add(ctx context.Context, draft *sales.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]*sales.Order, 0, len(s.drafts)+1)
	updated = append(updated, draft)
	updated = append(updated, s.drafts...)

	if err := saveJSON(ctx, s.store, KeyDrafts, updated); err != nil {
		return err
	}
	s.drafts = updated
	return nil
}

// Remove deletes the draft with the given id and persists the
// collection. An unknown id is a no-op and reports found=false.
func (s *DraftStore) Remove(ctx context.Context, id uuid.UUID) (*sales.Order, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, draft := range s.drafts {
		if draft.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false, nil
	}

	removed := s.drafts[idx]
	updated := make([]*sales.Order, 0, len(s.drafts)-1)
	updated = append(updated, s.drafts[:idx]...)
	updated = append(updated, s.drafts[idx+1:]...)

	if err := saveJSON(ctx, s.store, KeyDrafts, updated); err != nil {
		return nil, false, err
	}
	s.drafts = updated
	return removed, true, nil
}

// List returns the drafts, newest-first
func (s *DraftStore) List() []*sales.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*sales.Order(nil), s.drafts...)
}
