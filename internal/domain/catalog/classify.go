package catalog

import (
	"regexp"
	"strings"

	"github.com/vivekgondil/QuoteGenerator/internal/adapters/csvfile"
)

// Alias lists for the semantic roles a rate-card column can play. Matched
// against NormalizeKey(header); the first alias present in the row wins.
var (
	nameAliases       = []string{"skutitle", "producttitle", "productname", "description"}
	erpAliases        = []string{"erp", "erpprice", "listprice"}
	unitSellAliases   = []string{"unitsellprice", "unitsell", "price"}
	discountedAliases = []string{"discountedprice", "discountprice", "cost"}
	skuIDAliases      = []string{"skuid", "sku"}
	productIDAliases  = []string{"productid", "itemnumber"}
	partNumberAliases = []string{"partnumber"}
)

// priceColumnRe matches normalized keys of price-bearing columns. Price
// column values never enter the search blob or the differentiator list.
var priceColumnRe = regexp.MustCompile(`erp|listprice|unitsell|price|discountedprice|cost`)

// coreColumnRe matches normalized keys of identity columns (names, IDs,
// publishers). Core values join the search blob but are never
// differentiators — they already appear in the display name.
var coreColumnRe = regexp.MustCompile(`skutitle|producttitle|productname|description|skuid|productid|partnumber|publisher|changeindicator|itemnumber|sku`)

// Classification names the raw headers that carry each semantic role for one
// row (empty string = role absent), plus the side products of the header
// scan: differentiator values and the search blob.
type Classification struct {
	NameKey       string
	ERPKey        string
	UnitSellKey   string
	DiscountedKey string
	SKUIDKey      string
	ProductIDKey  string
	PartNumberKey string

	// Differentiators are non-core, non-price values appended to the display
	// name to tell otherwise-identical titles apart.
	Differentiators []string

	// SearchBlob is every non-price value, lowercased and space-joined.
	SearchBlob string
}

// Classify scans one row's columns and resolves semantic roles via the alias
// lists. Headers are matched on their normalized form; when two raw headers
// normalize to the same key, the first occurrence wins.
func Classify(row csvfile.Row) Classification {
	keyMap := make(map[string]string, len(row.Headers))
	var blob []string
	var diffs []string

	for _, raw := range row.Headers {
		clean := NormalizeKey(raw)
		if _, ok := keyMap[clean]; !ok {
			keyMap[clean] = raw
		}

		val := strings.TrimSpace(row.Get(raw))
		if val == "" {
			continue
		}
		isPrice := priceColumnRe.MatchString(clean)
		if !isPrice {
			blob = append(blob, NormalizeToken(val))
		}
		isCore := coreColumnRe.MatchString(clean)
		lower := strings.ToLower(val)
		if !isCore && !isPrice && lower != "null" && lower != "na" {
			diffs = append(diffs, val)
		}
	}

	pick := func(aliases []string) string {
		for _, a := range aliases {
			if raw, ok := keyMap[a]; ok {
				return raw
			}
		}
		return ""
	}

	return Classification{
		NameKey:         pick(nameAliases),
		ERPKey:          pick(erpAliases),
		UnitSellKey:     pick(unitSellAliases),
		DiscountedKey:   pick(discountedAliases),
		SKUIDKey:        pick(skuIDAliases),
		ProductIDKey:    pick(productIDAliases),
		PartNumberKey:   pick(partNumberAliases),
		Differentiators: diffs,
		SearchBlob:      strings.Join(blob, " "),
	}
}
