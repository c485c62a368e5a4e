package catalog

import (
	"github.com/vivekgondil/QuoteGenerator/internal/adapters/csvfile"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// IdentifierSet extracts the normalized identifier values from one no-rebate
// row. Only the SKU ID / product ID / part number columns are consulted;
// values that normalize to nothing are dropped. An empty result means the row
// cannot match anything.
func IdentifierSet(row csvfile.Row) []string {
	c := Classify(row)
	var ids []string
	for _, key := range []string{c.SKUIDKey, c.ProductIDKey, c.PartNumberKey} {
		if key == "" {
			continue
		}
		if norm := NormalizeKey(row.Get(key)); norm != "" {
			ids = append(ids, norm)
		}
	}
	return ids
}

// ApplyNoRebate locks every catalog entry whose identifier keys intersect
// ids. A single no-rebate row may lock zero, one, or many entries. Returns
// the count of entries newly locked (already-locked matches do not recount)
// and whether any entry matched at all.
func ApplyNoRebate(entries []ports.CatalogEntry, ids []string) (flagged int, matched bool) {
	if len(ids) == 0 {
		return 0, false
	}
	idSet := make(map[string]bool, len(ids))
	for _, id := range ids {
		idSet[id] = true
	}
	for i := range entries {
		hit := false
		for _, key := range entries[i].IdentifierKeys {
			if idSet[key] {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		matched = true
		if !entries[i].NoRebateLocked {
			entries[i].NoRebateLocked = true
			flagged++
		}
	}
	return flagged, matched
}
