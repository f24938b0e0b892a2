package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	// OrderStatusCompleted is a finalized sale. Terminal and immutable.
	OrderStatusCompleted OrderStatus = "COMPLETED"
	// OrderStatusDraft is a saved quote that can be resumed or discarded.
	OrderStatusDraft OrderStatus = "DRAFT"
	// OrderStatusCreditPayment is a repayment against a customer's
	// outstanding credit. It carries no merchandise lines. Terminal.
	OrderStatusCreditPayment OrderStatus = "CREDIT_PAYMENT"
)

// IsValid checks if the status is a known OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusCompleted, OrderStatusDraft, OrderStatusCreditPayment:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// PaymentMethod represents how an order was settled
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "CASH"     // dinheiro
	PaymentMethodTransfer PaymentMethod = "TRANSFER" // PIX
	PaymentMethodCredit   PaymentMethod = "CREDIT"   // fiado
)

// IsValid checks if the payment method is a known value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodTransfer, PaymentMethodCredit:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// Well-known customer names carried over from the shop's bookkeeping
// conventions.
const (
	// CounterCustomerName marks an anonymous walk-in sale.
	CounterCustomerName = "Balcão"
	// DraftCustomerName is the placeholder on saved quotes.
	DraftCustomerName = "Orçamento"
	// CreditPaymentNote annotates credit repayment entries.
	CreditPaymentNote = "Abatimento de dívida"
)

// Order is an immutable ledger entry once appended: a completed sale, a
// saved draft, or a credit repayment. Invariant: Total = max(0,
// Subtotal - Discount).
type Order struct {
	ID            uuid.UUID       `json:"id"`
	Lines         []CartLine      `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CustomerName  string          `json:"customer_name,omitempty"`
	Status        OrderStatus     `json:"status"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func subtotalOf(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.LinePrice)
	}
	return sum
}

// NewCompletedOrder builds a finalized sale from the given lines. A
// credit sale requires a customer name; a blank name on other methods
// becomes the counter-sale name. The total never goes below zero.
func NewCompletedOrder(lines []CartLine, discount decimal.Decimal, method PaymentMethod, customerName string) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	name := strings.TrimSpace(customerName)
	if method == PaymentMethodCredit && name == "" {
		return nil, shared.NewDomainError("CUSTOMER_NAME_REQUIRED", "Customer name is required for credit sales")
	}
	if name == "" {
		name = CounterCustomerName
	}

	subtotal := subtotalOf(lines)
	total := subtotal.Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return &Order{
		ID:            uuid.New(),
		Lines:         append([]CartLine(nil), lines...),
		Subtotal:      subtotal,
		Discount:      discount,
		Total:         total,
		PaymentMethod: method,
		CustomerName:  name,
		Status:        OrderStatusCompleted,
		CreatedAt:     time.Now(),
	}, nil
}

// NewDraft builds a saved quote. Drafts carry a cash placeholder method
// and no discount; both are chosen again when the draft is resumed and
// finalized.
func NewDraft(lines []CartLine) (*Order, error) {
	if len(lines) == 0 {
		return nil, shared.ErrEmptyCart
	}

	subtotal := subtotalOf(lines)
	return &Order{
		ID:            uuid.New(),
		Lines:         append([]CartLine(nil), lines...),
		Subtotal:      subtotal,
		Discount:      decimal.Zero,
		Total:         subtotal,
		PaymentMethod: PaymentMethodCash,
		CustomerName:  DraftCustomerName,
		Status:        OrderStatusDraft,
		CreatedAt:     time.Now(),
	}, nil
}

// NewCreditPayment builds a repayment entry against a customer's
// outstanding credit. The repayment itself must be settled immediately,
// so CREDIT is not a valid method here.
func NewCreditPayment(customerName string, amount decimal.Decimal, method PaymentMethod) (*Order, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return nil, shared.NewDomainError("CUSTOMER_NAME_REQUIRED", "Customer name is required for credit payments")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if !method.IsValid() || method == PaymentMethodCredit {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Credit payments must be settled in cash or transfer")
	}

	return &Order{
		ID:            uuid.New(),
		Lines:         []CartLine{},
		Subtotal:      decimal.Zero,
		Discount:      decimal.Zero,
		Total:         amount,
		PaymentMethod: method,
		CustomerName:  name,
		Status:        OrderStatusCreditPayment,
		Note:          CreditPaymentNote,
		CreatedAt:     time.Now(),
	}, nil
}

// IsCreditSale reports whether the order added to a customer's
// outstanding credit.
func (o *Order) IsCreditSale() bool {
	return o.Status == OrderStatusCompleted && o.PaymentMethod == PaymentMethodCredit
}

// LineCount returns the number of merchandise lines
func (o *Order) LineCount() int {
	return len(o.Lines)
}

// TotalMoney returns the final total as Money
func (o *Order) TotalMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(o.Total)
}

// SubtotalMoney returns the pre-discount total as Money
func (o *Order) SubtotalMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(o.Subtotal)
}

// DiscountMoney returns the discount as Money
func (o *Order) DiscountMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(o.Discount)
}
