package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

func testEntries() []ports.CatalogEntry {
	return []ports.CatalogEntry{
		{ID: "1", SourceFile: "dell.csv", DisplayName: "Dell Latitude 5420", SearchBlob: "dell latitude 5420 laptop"},
		{ID: "2", SourceFile: "dell.csv", DisplayName: "Dell XPS 13", SearchBlob: "dell xps 13 ultrabook"},
		{ID: "3", SourceFile: "hp.csv", DisplayName: "HP EliteBook", SearchBlob: "hp elitebook 840 laptop"},
	}
}

func TestSearch_AllTokensMustMatch(t *testing.T) {
	results := Search(testEntries(), "dell 5420", "")
	assert.Len(t, results, 1)
	assert.Equal(t, "1", results[0].ID)

	assert.Empty(t, Search(testEntries(), "dell hp", ""))
}

func TestSearch_SquashedSubstrings(t *testing.T) {
	// Tokens squash to alphanumerics, so punctuation in the query is noise.
	results := Search(testEntries(), "latitude-5420", "")
	assert.Len(t, results, 1)

	// Cross-word substrings match because the blob squashes too.
	results = Search(testEntries(), "e5420", "")
	assert.Len(t, results, 1)
}

func TestSearch_EmptyQuery(t *testing.T) {
	assert.Empty(t, Search(testEntries(), "", ""))
	assert.Empty(t, Search(testEntries(), "   ", ""))
	assert.Empty(t, Search(nil, "dell", ""))
}

func TestSearch_ScopeFile(t *testing.T) {
	results := Search(testEntries(), "laptop", "")
	assert.Len(t, results, 2)

	results = Search(testEntries(), "laptop", "hp.csv")
	assert.Len(t, results, 1)
	assert.Equal(t, "3", results[0].ID)
}

func TestSearch_CapsAtLimit(t *testing.T) {
	var entries []ports.CatalogEntry
	for i := 0; i < MaxSearchResults+50; i++ {
		entries = append(entries, ports.CatalogEntry{
			ID:         fmt.Sprintf("e%d", i),
			SearchBlob: "common widget",
		})
	}
	results := Search(entries, "widget", "")
	assert.Len(t, results, MaxSearchResults)
	// Catalog order is preserved.
	assert.Equal(t, "e0", results[0].ID)
}

func TestSourceFiles_UniqueSorted(t *testing.T) {
	files := SourceFiles(testEntries())
	assert.Equal(t, []string{"dell.csv", "hp.csv"}, files)
	assert.Empty(t, SourceFiles(nil))
}
