package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyBRL(t *testing.T) {
	m := NewMoneyBRL(decimal.NewFromFloat(34.95))
	assert.Equal(t, "34.95", m.Amount().String())
	assert.Equal(t, BRL, m.Currency())
	assert.True(t, m.IsPositive())
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyBRLFromFloat(10.50)
	b := NewMoneyBRLFromFloat(4.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "15", sum.Amount().String())

	diff, err := a.Subtract(b)
	require.NoError(t, err)
	assert.Equal(t, "6", diff.Amount().String())

	assert.Equal(t, "21", a.MultiplyByInt(2).Amount().String())
	assert.Equal(t, "-10.5", a.Negate().Amount().String())
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	a, err := NewMoney(decimal.NewFromInt(10), BRL)
	require.NoError(t, err)
	b, err := NewMoney(decimal.NewFromInt(10), USD)
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.Error(t, err)

	_, err = a.Subtract(b)
	assert.Error(t, err)
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoneyBRLFromFloat(10)
	b := NewMoneyBRLFromFloat(20)

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	greater, err := b.GreaterThan(a)
	require.NoError(t, err)
	assert.True(t, greater)

	assert.True(t, a.Equals(NewMoneyBRLFromFloat(10)))
	assert.True(t, ZeroBRL().IsZero())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m := NewMoneyBRLFromFloat(69.90)

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyUnmarshalDefaultsCurrency(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"12.34"}`), &m))
	assert.Equal(t, DefaultCurrency, m.Currency())
	assert.Equal(t, "12.34", m.Amount().String())
}
