package cmd

import (
	"fmt"
	"strings"

	"github.com/vivekgondil/QuoteGenerator/internal/app"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// formatIngestResult formats an upload batch summary.
//
//	⚡ 120 rows │ 115 added │ 3 dupes skipped │ 2 failed
func formatIngestResult(res *app.IngestResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d rows%s │ %s%d added%s │ %s%d dupes skipped%s │ %s%d failed%s\n",
		colorBold, res.RowsProcessed, colorReset,
		colorGreen, res.Added, colorReset,
		colorYellow, res.Duplicates, colorReset,
		colorRed, res.Failed, colorReset))
	for _, w := range res.Warnings {
		sb.WriteString(fmt.Sprintf("  %s%s%s\n", colorGray, w, colorReset))
	}
	return sb.String()
}

// formatCrossRefResult formats a no-rebate pass summary.
func formatCrossRefResult(res *app.CrossRefResult) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d SKUs%s │ %s%d locked%s │ %s%d not found%s\n",
		colorBold, res.RowsProcessed, colorReset,
		colorGreen, res.Flagged, colorReset,
		colorRed, res.Unmatched, colorReset))
	for _, w := range res.Warnings {
		sb.WriteString(fmt.Sprintf("  %s%s%s\n", colorGray, w, colorReset))
	}
	return sb.String()
}

// lockTag renders the NO REBATE marker for an entry or line.
func lockTag(locked bool) string {
	if locked {
		return fmt.Sprintf(" %s[NO REBATE]%s", colorRed, colorReset)
	}
	return ""
}

// formatSearchResults renders numbered search hits for terminal display.
func formatSearchResults(results []ports.CatalogEntry) string {
	if len(results) == 0 {
		return "no matches found — try adjusting your terms\n"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d hits%s\n", colorBold, len(results), colorReset))
	for i, e := range results {
		sb.WriteString(fmt.Sprintf("  %s%3d.%s %s%s  %s%s%s\n",
			colorGray, i+1, colorReset,
			e.DisplayName, lockTag(e.NoRebateLocked),
			colorCyan, e.SourceFile, colorReset))
	}
	return sb.String()
}
