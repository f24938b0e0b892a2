package sales

import (
	"github.com/google/uuid"
	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Cart accumulates the lines of the order being built. It is the sole
// owner of the in-progress line list; only its operations mutate it.
// Ownership of the lines transfers to the ledger on finalization or
// draft save, at which point the cart is cleared.
type Cart struct {
	lines []CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddLine prices the given amount of product and appends the resulting
// line, returning it.
func (c *Cart) AddLine(product *catalog.Product, amount int64) CartLine {
	line := NewCartLine(product, amount)
	c.lines = append(c.lines, line)
	return line
}

// RemoveLine removes a line by identity. Removing a line that is no
// longer present is a no-op, not an error.
func (c *Cart) RemoveLine(id uuid.UUID) bool {
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return true
		}
	}
	return false
}

// TakeLine removes a line and hands it back so the caller can re-seed
// its input controls from the line's product and amount. The price is
// not recomputed; the caller re-adds the line through AddLine.
func (c *Cart) TakeLine(id uuid.UUID) (CartLine, bool) {
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return line, true
		}
	}
	return CartLine{}, false
}

// Clear empties the cart unconditionally
func (c *Cart) Clear() {
	c.lines = nil
}

// Replace swaps the cart contents, used when resuming a draft or
// restoring the persisted cart at startup.
func (c *Cart) Replace(lines []CartLine) {
	c.lines = append([]CartLine(nil), lines...)
}

// Lines returns a copy of the current line list in insertion order
func (c *Cart) Lines() []CartLine {
	return append([]CartLine(nil), c.lines...)
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal sums the snapshot prices of all present lines
func (c *Cart) Subtotal() valueobject.Money {
	sum := decimal.Zero
	for _, line := range c.lines {
		sum = sum.Add(line.LinePrice)
	}
	return valueobject.NewMoneyBRL(sum)
}
