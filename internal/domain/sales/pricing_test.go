package sales

import (
	"testing"

	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightProduct(t *testing.T, pricePerKg float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("queijo", "Queijo", decimal.NewFromFloat(pricePerKg), catalog.UnitTypeWeight)
	require.NoError(t, err)
	return p
}

func countProduct(t *testing.T, pricePerUnit float64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct("doce", "Doce de Leite", decimal.NewFromFloat(pricePerUnit), catalog.UnitTypeCount)
	require.NoError(t, err)
	return p
}

func TestClampGrams(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected int64
	}{
		{"negative becomes zero", -500, 0},
		{"zero stays zero", 0, 0},
		{"in range unchanged", 350, 350},
		{"upper bound", 1_000_000, 1_000_000},
		{"above upper bound clamped", 1_000_001, 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampGrams(tt.input))
		})
	}
}

func TestClampUnits(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected int64
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"in range unchanged", 12, 12},
		{"upper bound", 1000, 1000},
		{"above upper bound clamped", 1001, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampUnits(tt.input))
		})
	}
}

func TestPriceForWeight(t *testing.T) {
	p := weightProduct(t, 69.90)

	tests := []struct {
		name     string
		grams    int64
		expected string
	}{
		{"half kilo", 500, "34.95"},
		{"one kilo", 1000, "69.9"},
		{"small cut", 100, "6.99"},
		{"zero grams", 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price := PriceFor(p, tt.grams)
			assert.Equal(t, tt.expected, price.Amount().String())
		})
	}
}

func TestPriceForCount(t *testing.T) {
	p := countProduct(t, 12.50)

	price := PriceFor(p, 3)
	assert.Equal(t, "37.5", price.Amount().String())

	// amount below the minimum is clamped to one unit
	price = PriceFor(p, 0)
	assert.Equal(t, "12.5", price.Amount().String())
}

func TestPriceForWeightClampsAmount(t *testing.T) {
	p := weightProduct(t, 10.00)

	price := PriceFor(p, -200)
	assert.True(t, price.IsZero())

	price = PriceFor(p, 2_000_000)
	assert.Equal(t, "10000", price.Amount().String())
}
