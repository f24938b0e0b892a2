package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CartLine is one item of an order being built. Product name and line
// price are snapshots taken when the line is added; later catalog edits
// never reprice lines already in the cart. Exactly one of WeightGrams /
// QuantityUnits is set, matching the unit type.
type CartLine struct {
	ID            uuid.UUID        `json:"id"`
	ProductID     string           `json:"product_id"`
	ProductName   string           `json:"product_name"`
	UnitType      catalog.UnitType `json:"unit_type"`
	WeightGrams   int64            `json:"weight_grams,omitempty"`
	QuantityUnits int64            `json:"quantity_units,omitempty"`
	LinePrice     decimal.Decimal  `json:"line_price"`
	CreatedAt     time.Time        `json:"created_at"`
}

// NewCartLine builds a line for the given amount of product, pricing it
// through PriceFor. Amounts are clamped to the pricing bounds.
func NewCartLine(product *catalog.Product, amount int64) CartLine {
	line := CartLine{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitType:    product.UnitType,
		LinePrice:   PriceFor(product, amount).Amount(),
		CreatedAt:   time.Now(),
	}
	if product.UnitType == catalog.UnitTypeCount {
		line.QuantityUnits = ClampUnits(amount)
	} else {
		line.WeightGrams = ClampGrams(amount)
	}
	return line
}

// Amount returns the consumed amount in the product's native measure:
// grams for weight-based lines, units for count-based ones.
func (l CartLine) Amount() int64 {
	if l.UnitType == catalog.UnitTypeCount {
		return l.QuantityUnits
	}
	return l.WeightGrams
}

// LinePriceMoney returns the snapshot price as Money
func (l CartLine) LinePriceMoney() valueobject.Money {
	return valueobject.NewMoneyBRL(l.LinePrice)
}

// ConsumptionByProduct aggregates the consumed amount per product across
// all lines. A cart may hold several lines of the same product; stock
// deduction is applied once per product with the summed amount.
func ConsumptionByProduct(lines []CartLine) map[string]int64 {
	consumption := make(map[string]int64, len(lines))
	for _, line := range lines {
		consumption[line.ProductID] += line.Amount()
	}
	return consumption
}
