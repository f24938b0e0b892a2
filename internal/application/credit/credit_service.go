// Package credit derives customer credit ("fiado") balances from the
// order ledger. No balance is stored anywhere: a balance is always the
// fold of that customer's ledger entries, so ledger and balances cannot
// disagree.
package credit

import (
	"iter"
	"sort"
	"strings"

	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

// HistoryProvider yields ledger entries for replay
type HistoryProvider interface {
	History() iter.Seq[*sales.Order]
}

// CreditService answers credit-balance questions by replaying the
// ledger. Customers are matched by exact name.
type CreditService struct {
	history   HistoryProvider
	customers *persistence.CustomerStore
}

// NewCreditService creates a new credit service
func NewCreditService(history HistoryProvider, customers *persistence.CustomerStore) *CreditService {
	return &CreditService{
		history:   history,
		customers: customers,
	}
}

// CustomerBalance is one customer's outstanding credit. Registered
// distinguishes customers from the registry from names that only ever
// appeared on ledger entries.
type CustomerBalance struct {
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
	Registered bool            `json:"registered"`
}

// BalanceMoney returns the balance as Money
func (b CustomerBalance) BalanceMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(b.Balance)
}

func contribution(order *sales.Order) decimal.Decimal {
	switch {
	case order.IsCreditSale():
		return order.Total
	case order.Status == sales.OrderStatusCreditPayment:
		return order.Total.Neg()
	}
	return decimal.Zero
}

// Balance returns the outstanding credit for the named customer.
// A customer with no credit activity has a zero balance.
func (s *CreditService) Balance(name string) decimal.Decimal {
	name = strings.TrimSpace(name)
	balance := decimal.Zero
	for order := range s.history.History() {
		if order.CustomerName == name {
			balance = balance.Add(contribution(order))
		}
	}
	return balance
}

// AllBalances returns a balance per customer: everyone with credit
// activity in the ledger, merged with every registered customer, so
// registered customers show up even at zero. The counter-sale name is
// never a debtor.
func (s *CreditService) AllBalances() []CustomerBalance {
	balances := make(map[string]decimal.Decimal)

	for order := range s.history.History() {
		delta := contribution(order)
		if delta.IsZero() {
			continue
		}
		balances[order.CustomerName] = balances[order.CustomerName].Add(delta)
	}

	registered := make(map[string]bool)
	for _, customer := range s.customers.List() {
		registered[customer.Name] = true
		if _, ok := balances[customer.Name]; !ok {
			balances[customer.Name] = decimal.Zero
		}
	}
	delete(balances, sales.CounterCustomerName)

	result := make([]CustomerBalance, 0, len(balances))
	for name, balance := range balances {
		result = append(result, CustomerBalance{Name: name, Balance: balance, Registered: registered[name]})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Balance.Equal(result[j].Balance) {
			return result[i].Balance.GreaterThan(result[j].Balance)
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// TotalOutstanding sums the positive balances across all customers
func (s *CreditService) TotalOutstanding() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.AllBalances() {
		if b.Balance.IsPositive() {
			total = total.Add(b.Balance)
		}
	}
	return total
}
