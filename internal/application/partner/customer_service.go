package partner

import (
	"context"
	"strings"

	"github.com/mvfrios/queijaria/internal/domain/partner"
	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// CustomerService manages the registered-customer list
type CustomerService struct {
	store  *persistence.CustomerStore
	logger *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(store *persistence.CustomerStore, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		store:  store,
		logger: logger,
	}
}

// RegisterCustomerRequest carries the customer registration fields
type RegisterCustomerRequest struct {
	Name    string `json:"name" binding:"required,notblank"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	TaxID   string `json:"tax_id"`
	Notes   string `json:"notes"`
}

// Load reads the registered customers
func (s *CustomerService) Load(ctx context.Context) error {
	return s.store.Load(ctx)
}

// Register adds a new customer. The name must not collide with an
// already registered customer; credit matching is by exact name.
func (s *CustomerService) Register(ctx context.Context, req RegisterCustomerRequest) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(req.Name, req.Phone, req.Address, req.TaxID, req.Notes)
	if err != nil {
		return nil, err
	}

	for _, existing := range s.store.List() {
		if existing.Name == customer.Name {
			return nil, shared.ErrAlreadyExists
		}
	}

	if err := s.store.Add(ctx, customer); err != nil {
		return nil, err
	}
	s.logger.Info("Registered customer", zap.String("name", customer.Name))
	return customer, nil
}

// List returns all registered customers
func (s *CustomerService) List() []*partner.Customer {
	return s.store.List()
}

// Search returns customers whose name contains the query,
// case-insensitively. An empty query returns everyone.
func (s *CustomerService) Search(query string) []*partner.Customer {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.store.List()
	}

	var matches []*partner.Customer
	for _, customer := range s.store.List() {
		if strings.Contains(strings.ToLower(customer.Name), query) {
			matches = append(matches, customer)
		}
	}
	return matches
}

// FindByName returns the registered customer with the exact name
func (s *CustomerService) FindByName(name string) (*partner.Customer, error) {
	name = strings.TrimSpace(name)
	for _, customer := range s.store.List() {
		if customer.Name == name {
			return customer, nil
		}
	}
	return nil, shared.ErrNotFound
}
