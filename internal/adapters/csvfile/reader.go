// Package csvfile reads header-delimited CSV files into ordered row maps.
// Header names are unconstrained — classification happens downstream on
// normalized keys, so this layer only guarantees that every row exposes the
// same headers in source-column order.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one CSV record. Headers preserves source column order; Values maps
// each raw header to its cell text. Ragged rows are padded with empty strings.
type Row struct {
	Headers []string
	Values  map[string]string
}

// Get returns the cell under the given raw header, or "" when absent.
func (r Row) Get(header string) string {
	return r.Values[header]
}

// ReadFile parses the CSV file at path. See ReadAll.
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv %s: %w", path, err)
	}
	defer f.Close()
	return ReadAll(f)
}

// ReadAll parses header-delimited CSV from r. The first record is the header
// row; every later record becomes a Row. Blank lines are skipped. Rows with
// more or fewer fields than the header are tolerated: extras are dropped,
// missing cells read as "". On duplicate raw headers the first column wins.
func ReadAll(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	// Dedupe raw headers, first column wins. cols maps each kept header to
	// its source column index.
	var kept []string
	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if _, seen := cols[h]; seen {
			continue
		}
		cols[h] = i
		kept = append(kept, h)
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}
		if isBlank(record) {
			continue
		}

		values := make(map[string]string, len(kept))
		for _, h := range kept {
			if i := cols[h]; i < len(record) {
				values[h] = record[i]
			} else {
				values[h] = ""
			}
		}
		rows = append(rows, Row{Headers: kept, Values: values})
	}
	return rows, nil
}

// isBlank reports whether every field of a record is empty or whitespace.
func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
