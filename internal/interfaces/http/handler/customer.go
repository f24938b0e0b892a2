package handler

import (
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mvfrios/queijaria/internal/application/credit"
	apppartner "github.com/mvfrios/queijaria/internal/application/partner"
	"github.com/mvfrios/queijaria/internal/domain/partner"
)

// CustomerHandler exposes customer registration and credit balances
type CustomerHandler struct {
	BaseHandler
	customers *apppartner.CustomerService
	credits   *credit.CreditService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *apppartner.CustomerService, credits *credit.CreditService) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		credits:   credits,
	}
}

// CustomerResponse is one registered customer
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

func (h *CustomerHandler) toCustomerResponse(customer *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        customer.ID.String(),
		Name:      customer.Name,
		Phone:     customer.Phone,
		Address:   customer.Address,
		TaxID:     customer.TaxID,
		Notes:     customer.Notes,
		Balance:   h.credits.Balance(customer.Name).InexactFloat64(),
		CreatedAt: customer.CreatedAt,
	}
}

// Register adds a new customer
// POST /api/v1/customers
func (h *CustomerHandler) Register(c *gin.Context) {
	var req apppartner.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.customers.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, h.toCustomerResponse(customer))
}

// List returns registered customers, filtered by the optional search
// query, debtors first and ties broken by name
// GET /api/v1/customers?search=
func (h *CustomerHandler) List(c *gin.Context) {
	customers := h.customers.Search(c.Query("search"))
	result := make([]CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		result = append(result, h.toCustomerResponse(customer))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Balance != result[j].Balance {
			return result[i].Balance > result[j].Balance
		}
		return result[i].Name < result[j].Name
	})
	h.Success(c, result)
}

// BalanceResponse is one customer's outstanding credit
type BalanceResponse struct {
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	Registered bool    `json:"registered"`
}

// Balances returns every customer credit balance, debtors first
// GET /api/v1/customers/balances
func (h *CustomerHandler) Balances(c *gin.Context) {
	balances := h.credits.AllBalances()
	result := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		result = append(result, BalanceResponse{
			Name:       b.Name,
			Balance:    b.Balance.InexactFloat64(),
			Registered: b.Registered,
		})
	}
	h.Success(c, result)
}

// TotalOutstanding returns the sum of positive balances
// GET /api/v1/customers/balances/total
func (h *CustomerHandler) TotalOutstanding(c *gin.Context) {
	h.Success(c, gin.H{"total": h.credits.TotalOutstanding().InexactFloat64()})
}
