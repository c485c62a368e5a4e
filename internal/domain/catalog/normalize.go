// Package catalog implements the rate-card ingestion pipeline: header
// classification, price selection, entry construction, free-text search, and
// the no-rebate cross-reference.
package catalog

import "strings"

// NormalizeKey lowercases s and strips every character outside a-z0-9.
// Used for header names, identifier comparison, and search-blob squashing.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeToken lowercases and trims surrounding whitespace. Search-blob
// values keep their inner punctuation at this stage — stripping to
// alphanumerics happens at match time.
func NormalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
