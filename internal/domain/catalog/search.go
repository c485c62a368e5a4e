package catalog

import (
	"sort"
	"strings"

	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// MaxSearchResults caps a result set; catalogs run to tens of thousands of
// rows and anything past this is noise in a dropdown or terminal.
const MaxSearchResults = 100

// Search filters entries to those whose squashed search blob contains every
// squashed query token (AND semantics, plain substrings — no ranking, no
// fuzz). An empty query or catalog yields no results. scopeFile, when
// non-empty, restricts matching to entries from that source file. Catalog
// order is preserved.
func Search(entries []ports.CatalogEntry, query, scopeFile string) []ports.CatalogEntry {
	query = NormalizeToken(query)
	if query == "" || len(entries) == 0 {
		return nil
	}
	tokens := strings.Fields(query)

	var results []ports.CatalogEntry
	for _, e := range entries {
		if scopeFile != "" && e.SourceFile != scopeFile {
			continue
		}
		blob := NormalizeKey(e.SearchBlob)
		match := true
		for _, tok := range tokens {
			// An empty squashed token (pure punctuation) always matches.
			if t := NormalizeKey(tok); t != "" && !strings.Contains(blob, t) {
				match = false
				break
			}
		}
		if match {
			results = append(results, e)
			if len(results) == MaxSearchResults {
				break
			}
		}
	}
	return results
}

// SourceFiles returns the sorted unique source-file names in the catalog,
// used to scope searches to one uploaded rate card.
func SourceFiles(entries []ports.CatalogEntry) []string {
	seen := make(map[string]bool, len(entries))
	var files []string
	for _, e := range entries {
		if !seen[e.SourceFile] {
			seen[e.SourceFile] = true
			files = append(files, e.SourceFile)
		}
	}
	sort.Strings(files)
	return files
}
