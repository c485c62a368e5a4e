package catalog

import "strings"

// PriceCells holds the raw cell text of the three price columns for one row.
// An empty string means the column is absent or its cell is empty.
type PriceCells struct {
	ERP        string
	UnitSell   string
	Discounted string
}

// SelectPrice picks the authoritative price for a row.
//
// Precedence, first match wins: a positive-parsing ERP, unit-sell, then
// discounted/cost cell; failing all three, a second pass accepts the first
// cell that is merely non-blank, whatever it parses to. That fallback can
// admit zero or negative prices (the source data uses this for free items);
// revisit if it turns out to be feeding garbage rows into catalogs.
//
// Returns ok=false when no cell is usable — the row has no valid price.
func SelectPrice(c PriceCells) (price float64, ok bool) {
	cells := []string{c.ERP, c.UnitSell, c.Discounted}
	for _, cell := range cells {
		if cell != "" && ParseMoney(cell) > 0 {
			return ParseMoney(cell), true
		}
	}
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return ParseMoney(cell), true
		}
	}
	return 0, false
}
