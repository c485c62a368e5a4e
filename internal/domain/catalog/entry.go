package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vivekgondil/QuoteGenerator/internal/adapters/csvfile"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// ErrRowInvalid marks a row that cannot become a catalog entry: no resolvable
// name column or no usable price cell. Callers skip and count such rows, the
// batch continues.
var ErrRowInvalid = errors.New("row missing name or valid price")

// BuildEntry assembles a CatalogEntry from one rate-card row.
//
// The display name is the trimmed title, optionally suffixed with a bracketed
// identifier (first present among SKU ID / product ID / part number) and a
// bracketed differentiator list. Each of the three price fields resolves from
// its own column when present, otherwise from the waterfall-selected price.
func BuildEntry(row csvfile.Row, sourceFile string) (ports.CatalogEntry, error) {
	c := Classify(row)
	cell := func(key string) string {
		if key == "" {
			return ""
		}
		return row.Get(key)
	}

	base, ok := SelectPrice(PriceCells{
		ERP:        cell(c.ERPKey),
		UnitSell:   cell(c.UnitSellKey),
		Discounted: cell(c.DiscountedKey),
	})
	if c.NameKey == "" || !ok {
		return ports.CatalogEntry{}, ErrRowInvalid
	}

	resolve := func(key string) float64 {
		if v := cell(key); v != "" {
			return ParseMoney(v)
		}
		return base
	}

	title := strings.TrimSpace(cell(c.NameKey))
	displayName := title
	for _, key := range []string{c.SKUIDKey, c.ProductIDKey, c.PartNumberKey} {
		if key != "" {
			if id := cell(key); id != "" {
				displayName += fmt.Sprintf(" [%s]", strings.TrimSpace(id))
			}
			break
		}
	}
	if len(c.Differentiators) > 0 {
		displayName += fmt.Sprintf(" [%s]", strings.Join(c.Differentiators, " | "))
	}

	var idKeys []string
	for _, key := range []string{c.SKUIDKey, c.ProductIDKey, c.PartNumberKey} {
		if norm := NormalizeKey(cell(key)); norm != "" {
			idKeys = append(idKeys, norm)
		}
	}

	return ports.CatalogEntry{
		ID:              uuid.NewString(),
		SourceFile:      sourceFile,
		DisplayName:     displayName,
		Title:           title,
		SearchBlob:      c.SearchBlob,
		IdentifierKeys:  idKeys,
		ERPPrice:        resolve(c.ERPKey),
		UnitSellPrice:   resolve(c.UnitSellKey),
		DiscountedPrice: resolve(c.DiscountedKey),
	}, nil
}

// IsDuplicate reports whether candidate collides with an existing entry on
// the (displayName, erpPrice) deduplication key.
func IsDuplicate(entries []ports.CatalogEntry, candidate ports.CatalogEntry) bool {
	for _, e := range entries {
		if e.DisplayName == candidate.DisplayName && e.ERPPrice == candidate.ERPPrice {
			return true
		}
	}
	return false
}
