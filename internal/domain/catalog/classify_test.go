package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vivekgondil/QuoteGenerator/internal/adapters/csvfile"
)

// makeRow builds a Row from ordered header/value pairs.
func makeRow(pairs ...string) csvfile.Row {
	row := csvfile.Row{Values: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		row.Headers = append(row.Headers, pairs[i])
		row.Values[pairs[i]] = pairs[i+1]
	}
	return row
}

func TestClassify_AliasResolution(t *testing.T) {
	row := makeRow(
		"SKU Title", "Widget A",
		"SKU ID", "W-100",
		"ERP Price", "₹1,000",
		"Unit Sell Price", "900",
		"Discounted Price", "850",
	)
	c := Classify(row)

	assert.Equal(t, "SKU Title", c.NameKey)
	assert.Equal(t, "SKU ID", c.SKUIDKey)
	assert.Equal(t, "ERP Price", c.ERPKey)
	assert.Equal(t, "Unit Sell Price", c.UnitSellKey)
	assert.Equal(t, "Discounted Price", c.DiscountedKey)
	assert.Empty(t, c.ProductIDKey)
	assert.Empty(t, c.PartNumberKey)
}

func TestClassify_AliasPriority(t *testing.T) {
	// "Product Title" loses to "SKU Title" because the alias list checks
	// skutitle first, regardless of column order.
	row := makeRow(
		"Product Title", "Gadget",
		"SKU Title", "Widget",
	)
	c := Classify(row)
	assert.Equal(t, "SKU Title", c.NameKey)
}

func TestClassify_BlobExcludesPrices(t *testing.T) {
	row := makeRow(
		"SKU Title", "Dell Latitude 5420",
		"ERP Price", "95000",
		"Publisher", "Dell",
	)
	c := Classify(row)
	assert.Equal(t, "dell latitude 5420 dell", c.SearchBlob)
}

func TestClassify_Differentiators(t *testing.T) {
	row := makeRow(
		"SKU Title", "Office Suite",
		"License Term", "1 Year",
		"Region", "null",
		"Segment", "NA",
		"Publisher", "Contoso",
		"ERP Price", "5000",
	)
	c := Classify(row)
	// Core columns (title, publisher), price columns, and null/NA values are
	// all excluded.
	assert.Equal(t, []string{"1 Year"}, c.Differentiators)
}

func TestClassify_DuplicateHeaderFirstWins(t *testing.T) {
	row := csvfile.Row{
		Headers: []string{"SKU Title"},
		Values:  map[string]string{"SKU Title": "First"},
	}
	c := Classify(row)
	assert.Equal(t, "SKU Title", c.NameKey)
	assert.Equal(t, "first", c.SearchBlob)
}
