// Package quote models the active quote: snapshotted line items with
// quantity and per-line discount, plus the tax-aware totals used by the
// summary renderer.
package quote

import (
	"math"

	"github.com/google/uuid"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// ClampPercent forces v into [0,100]. NaN and negatives collapse to 0.
func ClampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Cart holds the active quote lines in insertion order.
type Cart struct {
	Lines []ports.QuoteLine
}

// Add snapshots a catalog entry into a new quote line with quantity 1.
// Rebate-locked entries enter with a pinned zero discount regardless of
// defaultDiscount; everything else gets the clamped default.
func (c *Cart) Add(e ports.CatalogEntry, defaultDiscount float64) ports.QuoteLine {
	disc := ClampPercent(defaultDiscount)
	if e.NoRebateLocked {
		disc = 0
	}
	line := ports.QuoteLine{
		CartID:               uuid.NewString(),
		DisplayName:          e.DisplayName,
		Title:                e.Title,
		ERPPrice:             e.ERPPrice,
		UnitSellPrice:        e.UnitSellPrice,
		DiscountedPrice:      e.DiscountedPrice,
		NoRebateLocked:       e.NoRebateLocked,
		Quantity:             1,
		ExtraDiscountPercent: disc,
	}
	c.Lines = append(c.Lines, line)
	return line
}

// find returns the index of the line with the given cart ID, or -1.
func (c *Cart) find(cartID string) int {
	for i := range c.Lines {
		if c.Lines[i].CartID == cartID {
			return i
		}
	}
	return -1
}

// AdjustQuantity adds delta to a line's quantity, flooring at 1.
// Returns false when no such line exists.
func (c *Cart) AdjustQuantity(cartID string, delta int) bool {
	i := c.find(cartID)
	if i < 0 {
		return false
	}
	c.Lines[i].Quantity += delta
	if c.Lines[i].Quantity < 1 {
		c.Lines[i].Quantity = 1
	}
	return true
}

// SetDiscount sets a line's extra discount, clamped to [0,100]. A no-op on
// rebate-locked lines — the lock is immutable for the life of the line.
// Returns false when no such line exists.
func (c *Cart) SetDiscount(cartID string, pct float64) bool {
	i := c.find(cartID)
	if i < 0 {
		return false
	}
	if c.Lines[i].NoRebateLocked {
		return true
	}
	c.Lines[i].ExtraDiscountPercent = ClampPercent(pct)
	return true
}

// Remove deletes a line. Returns false when no such line exists.
func (c *Cart) Remove(cartID string) bool {
	i := c.find(cartID)
	if i < 0 {
		return false
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// FinalUnitPrice is the discounted price after the line's extra discount.
// Locked lines sell at the discounted price untouched.
func FinalUnitPrice(l ports.QuoteLine) float64 {
	if l.NoRebateLocked {
		return l.DiscountedPrice
	}
	return l.DiscountedPrice * (1 - l.ExtraDiscountPercent/100)
}

// LineTotal is the final unit price extended by quantity.
func LineTotal(l ports.QuoteLine) float64 {
	return FinalUnitPrice(l) * float64(l.Quantity)
}

// Totals aggregates a quote. When tax is excluded, TaxAmount is 0 and
// GrandTotal equals Subtotal.
type Totals struct {
	Subtotal   float64
	TaxRate    float64
	TaxAmount  float64
	GrandTotal float64
	IncludeTax bool
}

// ComputeTotals sums line totals and applies the tax setting.
func ComputeTotals(lines []ports.QuoteLine, taxRate float64, includeTax bool) Totals {
	taxRate = ClampPercent(taxRate)
	t := Totals{TaxRate: taxRate, IncludeTax: includeTax}
	for _, l := range lines {
		t.Subtotal += LineTotal(l)
	}
	if includeTax {
		t.TaxAmount = t.Subtotal * taxRate / 100
	}
	t.GrandTotal = t.Subtotal + t.TaxAmount
	return t
}
