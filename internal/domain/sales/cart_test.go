package sales

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddLine(t *testing.T) {
	cart := NewCart()
	p := weightProduct(t, 69.90)

	line := cart.AddLine(p, 500)

	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, p.ID, line.ProductID)
	assert.Equal(t, p.Name, line.ProductName)
	assert.Equal(t, int64(500), line.WeightGrams)
	assert.Zero(t, line.QuantityUnits)
	assert.Equal(t, "34.95", line.LinePrice.String())
}

func TestCartPriceSnapshotSurvivesCatalogEdit(t *testing.T) {
	cart := NewCart()
	p := weightProduct(t, 69.90)

	line := cart.AddLine(p, 1000)
	require.Equal(t, "69.9", line.LinePrice.String())

	// repricing the product must not touch lines already in the cart
	require.NoError(t, p.Update(p.Name, p.SellPrice.Mul(decimal.NewFromInt(2)), p.CostPrice))

	assert.Equal(t, "69.9", cart.Lines()[0].LinePrice.String())
	assert.Equal(t, "69.9", cart.Subtotal().Amount().String())
}

func TestCartRemoveLine(t *testing.T) {
	cart := NewCart()
	p := countProduct(t, 10)

	a := cart.AddLine(p, 1)
	b := cart.AddLine(p, 2)

	assert.True(t, cart.RemoveLine(a.ID))
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, b.ID, cart.Lines()[0].ID)

	// removing again is a no-op
	assert.False(t, cart.RemoveLine(a.ID))
	assert.Equal(t, 1, cart.Len())

	assert.False(t, cart.RemoveLine(uuid.New()))
}

func TestCartTakeLine(t *testing.T) {
	cart := NewCart()
	p := weightProduct(t, 50)

	line := cart.AddLine(p, 300)

	taken, ok := cart.TakeLine(line.ID)
	require.True(t, ok)
	assert.Equal(t, line.ID, taken.ID)
	assert.Equal(t, int64(300), taken.WeightGrams)
	assert.True(t, cart.IsEmpty())

	_, ok = cart.TakeLine(line.ID)
	assert.False(t, ok)
}

func TestCartClearAndReplace(t *testing.T) {
	cart := NewCart()
	p := countProduct(t, 5)

	cart.AddLine(p, 2)
	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Subtotal().IsZero())

	lines := []CartLine{NewCartLine(p, 3), NewCartLine(p, 1)}
	cart.Replace(lines)
	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, "20", cart.Subtotal().Amount().String())
}

func TestCartSubtotalSumsAllLines(t *testing.T) {
	cart := NewCart()
	cheese := weightProduct(t, 69.90)
	sweet := countProduct(t, 12.50)

	cart.AddLine(cheese, 500) // 34.95
	cart.AddLine(cheese, 250) // 17.475
	cart.AddLine(sweet, 2)    // 25

	assert.Equal(t, "77.425", cart.Subtotal().Amount().String())
}

func TestConsumptionByProduct(t *testing.T) {
	cheese := weightProduct(t, 69.90)
	sweet := countProduct(t, 12.50)

	lines := []CartLine{
		NewCartLine(cheese, 500),
		NewCartLine(cheese, 250),
		NewCartLine(sweet, 2),
	}

	consumption := ConsumptionByProduct(lines)
	assert.Equal(t, int64(750), consumption[cheese.ID])
	assert.Equal(t, int64(2), consumption[sweet.ID])
	assert.Len(t, consumption, 2)
}
