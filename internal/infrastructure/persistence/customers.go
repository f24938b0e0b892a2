package persistence

import (
	"context"
	"sync"

	"github.com/mvfrios/queijaria/internal/domain/partner"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
)

// CustomerStore persists the registered-customer list as one blob
type CustomerStore struct {
	store blobstore.Store

	mu        sync.RWMutex
	customers []*partner.Customer
}

// NewCustomerStore creates a customer store backed by the given blob
// store
func NewCustomerStore(store blobstore.Store) *CustomerStore {
	return &CustomerStore{store: store}
}

// Load reads the customers blob. A missing blob means no registered
// customers.
func (s *CustomerStore) Load(ctx context.Context) error {
	var customers []*partner.Customer
	if _, err := loadJSON(ctx, s.store, KeyCustomers, &customers); err != nil {
		return err
	}
	s.mu.Lock()
	s.customers = customers
	s.mu.Unlock()
	return nil
}

// Add appends the customer and persists the list
func (s *CustomerStore) Add(ctx context.Context, customer *partner.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(append([]*partner.Customer(nil), s.customers...), customer)
	if err := saveJSON(ctx, s.store, KeyCustomers, updated); err != nil {
		return err
	}
	s.customers = updated
	return nil
}

// List returns the registered customers
func (s *CustomerStore) List() []*partner.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*partner.Customer(nil), s.customers...)
}
