package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectPrice_ERPWins(t *testing.T) {
	price, ok := SelectPrice(PriceCells{ERP: "₹1,000", UnitSell: "900", Discounted: "850"})
	assert.True(t, ok)
	assert.Equal(t, 1000.0, price)
}

func TestSelectPrice_SkipsNonPositiveERP(t *testing.T) {
	price, ok := SelectPrice(PriceCells{ERP: "0", UnitSell: "50"})
	assert.True(t, ok)
	assert.Equal(t, 50.0, price)
}

func TestSelectPrice_FallbackAcceptsNonBlank(t *testing.T) {
	// No cell parses positive; the first non-blank one wins anyway.
	price, ok := SelectPrice(PriceCells{ERP: "0", UnitSell: "", Discounted: ""})
	assert.True(t, ok)
	assert.Equal(t, 0.0, price)

	price, ok = SelectPrice(PriceCells{ERP: "N/A", Discounted: "-5"})
	assert.True(t, ok)
	assert.Equal(t, 0.0, price)
}

func TestSelectPrice_AllBlank(t *testing.T) {
	_, ok := SelectPrice(PriceCells{})
	assert.False(t, ok)

	_, ok = SelectPrice(PriceCells{ERP: "   "})
	assert.False(t, ok)
}
