package sales

import (
	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Amount bounds enforced when pricing a line. Weight is in grams (up to
// 1000 kg), count in whole units.
const (
	MinWeightGrams   int64 = 0
	MaxWeightGrams   int64 = 1_000_000
	MinQuantityUnits int64 = 1
	MaxQuantityUnits int64 = 1000
)

var gramsPerKilo = decimal.NewFromInt(1000)

// ClampGrams clamps a weight amount to the allowed gram range
func ClampGrams(grams int64) int64 {
	return min(max(grams, MinWeightGrams), MaxWeightGrams)
}

// ClampUnits clamps a count amount to the allowed unit range
func ClampUnits(units int64) int64 {
	return min(max(units, MinQuantityUnits), MaxQuantityUnits)
}

// PriceFor computes the price of a given amount of product. For
// weight-based products the amount is grams and the selling price is per
// kilogram; for count-based products the amount is units and the selling
// price is per unit. The computation is exact decimal arithmetic; display
// rounding is a presentation concern.
func PriceFor(product *catalog.Product, amount int64) valueobject.Money {
	if product.UnitType == catalog.UnitTypeCount {
		units := ClampUnits(amount)
		return valueobject.NewMoneyBRL(product.SellPrice.Mul(decimal.NewFromInt(units)))
	}
	grams := ClampGrams(amount)
	price := decimal.NewFromInt(grams).Div(gramsPerKilo).Mul(product.SellPrice)
	return valueobject.NewMoneyBRL(price)
}
