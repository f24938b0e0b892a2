package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvfrios/queijaria/internal/domain/shared"
)

// Customer is a registered shop customer. Registration is optional:
// credit activity in the ledger matches customers by exact name, so a
// debtor may exist with no Customer record at all.
type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"` // CPF
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCustomer creates a new customer. Only the name is required.
func NewCustomer(name, phone, address, taxID, notes string) (*Customer, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Customer{
		ID:        uuid.New(),
		Name:      trimmed,
		Phone:     phone,
		Address:   address,
		TaxID:     taxID,
		Notes:     notes,
		CreatedAt: time.Now(),
	}, nil
}
