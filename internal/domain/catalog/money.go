package catalog

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParseMoney extracts a numeric value from arbitrary price-like text.
// Every character except digits, '.' and '-' is discarded as noise (currency
// symbols, thousands separators, stray labels), then the longest numeric
// prefix of the residue is parsed. Labels that carry a dot leave it in the
// residue ("Rs. 1,234.50" strips to ".1234.50"), so the lenient prefix read
// still yields a value instead of rejecting the cell. Returns 0 when no
// digits remain or the prefix does not parse.
func ParseMoney(s string) float64 {
	if s == "" {
		return 0
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	num := numericPrefix(b.String())
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// numericPrefix returns the longest leading run of residue that reads as a
// decimal number: optional sign, digits, at most one dot ("1.2.3" reads as
// "1.2"). Empty when no digit is reached before the run ends.
func numericPrefix(residue string) string {
	end := 0
	dot := false
	digit := false
loop:
	for ; end < len(residue); end++ {
		switch c := residue[end]; {
		case c >= '0' && c <= '9':
			digit = true
		case c == '-' && end == 0:
		case c == '.' && !dot:
			dot = true
		default:
			break loop
		}
	}
	if !digit {
		return ""
	}
	return residue[:end]
}

// inr formats numbers with Indian-system grouping (lakh/crore).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a monetary value with the rupee symbol, exactly two
// decimal places, and en-IN thousands grouping (1,23,456.00).
func FormatINR(v float64) string {
	return inr.Sprintf("₹ %v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
