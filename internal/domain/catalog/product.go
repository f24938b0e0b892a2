package catalog

import (
	"strings"
	"time"

	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// UnitType determines how a product is measured and priced:
// by weight (price per kilogram, amounts in grams) or by count
// (price per unit, amounts in whole units).
type UnitType string

const (
	UnitTypeWeight UnitType = "WEIGHT"
	UnitTypeCount  UnitType = "COUNT"
)

// IsValid checks if the unit type is a known value
func (u UnitType) IsValid() bool {
	return u == UnitTypeWeight || u == UnitTypeCount
}

// String returns the string representation of UnitType
func (u UnitType) String() string {
	return string(u)
}

// Product represents a sellable item in the shop catalog.
// Stock is measured in the product's native amount: grams for
// weight-based products, units for count-based ones. The unit type is
// immutable after creation; changing it would invalidate cart lines
// already priced against it.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	SellPrice  decimal.Decimal `json:"sell_price"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	UnitType   UnitType        `json:"unit_type"`
	Stock      int64           `json:"stock"`
	TrackStock bool            `json:"track_stock"`
	Image      string          `json:"image,omitempty"`
	IsDefault  bool            `json:"is_default,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// NewProduct creates a new product
func NewProduct(id, name string, sellPrice decimal.Decimal, unitType UnitType) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if !sellPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price must be positive")
	}
	if !unitType.IsValid() {
		return nil, shared.NewDomainError("INVALID_UNIT_TYPE", "Unit type must be WEIGHT or COUNT")
	}

	now := time.Now()
	return &Product{
		ID:        id,
		Name:      strings.TrimSpace(name),
		SellPrice: sellPrice,
		CostPrice: decimal.Zero,
		UnitType:  unitType,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update updates the product's editable attributes. The unit type is
// left untouched. Lines already in the cart keep their snapshot price.
func (p *Product) Update(name string, sellPrice, costPrice decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if !sellPrice.IsPositive() {
		return shared.NewDomainError("INVALID_PRICE", "Selling price must be positive")
	}
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.SellPrice = sellPrice
	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()
	return nil
}

// SetStockTracking enables or disables stock tracking. When enabling,
// the given level becomes the current stock.
func (p *Product) SetStockTracking(track bool, stock int64) {
	p.TrackStock = track
	if track {
		p.Stock = stock
	}
	p.UpdatedAt = time.Now()
}

// SetImage sets the product image URL
func (p *Product) SetImage(url string) {
	p.Image = url
	p.UpdatedAt = time.Now()
}

// HasSufficientStock reports whether the requested amount is covered by
// the current stock. Products without tracking always have sufficient
// stock.
func (p *Product) HasSufficientStock(amount int64) bool {
	if !p.TrackStock {
		return true
	}
	return p.Stock >= amount
}

// DeductStock subtracts the consumed amount from the current stock.
// The result may go below zero; refusing insufficient stock is a policy
// decision made before the deduction, not here.
func (p *Product) DeductStock(amount int64) {
	if !p.TrackStock {
		return
	}
	p.Stock -= amount
	p.UpdatedAt = time.Now()
}

// SellPriceMoney returns the selling price as Money
func (p *Product) SellPriceMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(p.SellPrice)
}

// CostPriceMoney returns the cost price as Money
func (p *Product) CostPriceMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(p.CostPrice)
}

// ProfitMargin returns the margin percentage over the selling price,
// zero when either price is missing.
func (p *Product) ProfitMargin() decimal.Decimal {
	if p.SellPrice.IsZero() || p.CostPrice.IsZero() {
		return decimal.Zero
	}
	return p.SellPrice.Sub(p.CostPrice).Div(p.SellPrice).Mul(decimal.NewFromInt(100)).Round(2)
}

// DefaultProducts returns the catalog seeded on first run.
func DefaultProducts() []*Product {
	now := time.Now()
	return []*Product{
		{
			ID:        "mussarela-fatiado",
			Name:      "Mussarela Fatiado",
			SellPrice: decimal.NewFromFloat(69.90),
			UnitType:  UnitTypeWeight,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "mussarela-pedaco",
			Name:      "Mussarela Pedaço",
			SellPrice: decimal.NewFromFloat(65.90),
			UnitType:  UnitTypeWeight,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
