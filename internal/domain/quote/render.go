package quote

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/vivekgondil/QuoteGenerator/internal/domain/catalog"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// summaryTmpl is the email-style quote table. Inline styles only — the output
// is pasted into mail clients that strip stylesheets. The discounted-price
// column renders only when at least one line carries an extra discount.
var summaryTmpl = template.Must(template.New("summary").Parse(`<table style="border-collapse: collapse; width: 100%; max-width: 650px; font-family: 'Segoe UI', Arial, sans-serif; font-size: 12px;">
<thead>
<tr>
<th style="border: 1px solid #e6e6e6; padding: 12px; text-align: left;">Description</th>
<th style="border: 1px solid #e6e6e6; padding: 12px; text-align: right;">ERP Price</th>
<th style="border: 1px solid #e6e6e6; padding: 12px; text-align: right;">Unit Price</th>
{{if .ShowDiscount}}<th style="border: 1px solid #e6e6e6; padding: 12px; text-align: right;">Discounted Price</th>
{{end}}<th style="border: 1px solid #e6e6e6; padding: 12px; text-align: center;">Qty</th>
<th style="border: 1px solid #e6e6e6; padding: 12px; text-align: right;">Ext. Total</th>
</tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td style="border: 1px solid #e6e6e6; padding: 10px; font-size: 13px;">{{.Description}}</td>
<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right; color: #666;">{{.ERP}}</td>
<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;">{{.Unit}}</td>
{{if $.ShowDiscount}}<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right; color: #F27222;">{{.Discounted}}</td>
{{end}}<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: center;">{{.Qty}}</td>
<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>{{.Total}}</strong></td>
</tr>
{{end}}</tbody>
<tfoot>
{{if .IncludeTax}}<tr>
<td colspan="{{.FooterSpan}}" style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>Subtotal:</strong></td>
<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>{{.Subtotal}}</strong></td>
</tr>
<tr>
<td colspan="{{.FooterSpan}}" style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>Tax ({{.TaxRate}}%):</strong></td>
<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>{{.TaxAmount}}</strong></td>
</tr>
{{end}}<tr>
<td colspan="{{.FooterSpan}}" style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>{{.GrandLabel}}</strong></td>
<td style="border: 1px solid #e6e6e6; padding: 10px; text-align: right;"><strong>{{.GrandTotal}}</strong></td>
</tr>
</tfoot>
</table>
`))

type summaryRow struct {
	Description string
	ERP         string
	Unit        string
	Discounted  string
	Qty         int
	Total       string
}

type summaryData struct {
	Rows         []summaryRow
	ShowDiscount bool
	IncludeTax   bool
	FooterSpan   int
	Subtotal     string
	TaxRate      string
	TaxAmount    string
	GrandLabel   string
	GrandTotal   string
}

// RenderHTML produces the email-style summary table for the given lines.
// The Description cell leads with the product title; the full display name
// with bracketed identifiers stays in the builder view only.
func RenderHTML(lines []ports.QuoteLine, taxRate float64, includeTax bool) (string, error) {
	totals := ComputeTotals(lines, taxRate, includeTax)

	showDiscount := false
	for _, l := range lines {
		if l.ExtraDiscountPercent > 0 {
			showDiscount = true
			break
		}
	}

	data := summaryData{
		ShowDiscount: showDiscount,
		IncludeTax:   includeTax,
		FooterSpan:   4,
		Subtotal:     catalog.FormatINR(totals.Subtotal),
		TaxRate:      trimPercent(totals.TaxRate),
		TaxAmount:    catalog.FormatINR(totals.TaxAmount),
		GrandLabel:   "Total:",
		GrandTotal:   catalog.FormatINR(totals.GrandTotal),
	}
	if showDiscount {
		data.FooterSpan = 5
	}
	if includeTax {
		data.GrandLabel = "Grand Total:"
	}

	for _, l := range lines {
		desc := l.Title
		if desc == "" {
			desc = l.DisplayName
		}
		row := summaryRow{
			Description: desc,
			ERP:         catalog.FormatINR(l.ERPPrice),
			Unit:        catalog.FormatINR(l.DiscountedPrice),
			Qty:         l.Quantity,
			Total:       catalog.FormatINR(LineTotal(l)),
		}
		// Discounted column shows the post-discount unit price, or the base
		// price when the line has no live discount.
		if l.ExtraDiscountPercent > 0 && !l.NoRebateLocked {
			row.Discounted = catalog.FormatINR(FinalUnitPrice(l))
		} else {
			row.Discounted = catalog.FormatINR(l.DiscountedPrice)
		}
		data.Rows = append(data.Rows, row)
	}

	var sb strings.Builder
	if err := summaryTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// trimPercent renders a tax rate without trailing zeros (18, not 18.00).
func trimPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
