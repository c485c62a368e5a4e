// Package app wires storage to the catalog and quote domain logic and exposes
// the command operations the CLI calls. All mutation runs under a single
// mutex and every mutating operation persists its state before returning, so
// concurrent ingest completions compose instead of clobbering each other.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vivekgondil/QuoteGenerator/internal/adapters/bbolt"
	"github.com/vivekgondil/QuoteGenerator/internal/adapters/csvfile"
	"github.com/vivekgondil/QuoteGenerator/internal/domain/catalog"
	"github.com/vivekgondil/QuoteGenerator/internal/domain/quote"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

// Precondition errors. Surfaced to the user as blocking notices; the
// operation aborts without mutating state.
var (
	ErrNoFiles      = errors.New("no input files given")
	ErrEmptyCatalog = errors.New("catalog is empty — ingest a master rate card first")
	ErrEmptyCart    = errors.New("quote is empty — search and add items first")
	ErrLineNotFound = errors.New("no quote line with that id")
	ErrNoMatch      = errors.New("no catalog entry matched")
)

// Warn thresholds: per-row warnings are captured up to these counts, then
// suppressed while counting continues.
const (
	maxIngestWarnings   = 10
	maxCrossRefWarnings = 20
)

// App is the top-level container: persisted state plus the storage adapter.
type App struct {
	Store ports.Storage

	mu       sync.Mutex
	catalog  []ports.CatalogEntry
	cart     quote.Cart
	settings ports.Settings
}

// Config holds initialization parameters for the App.
type Config struct {
	DBPath string
}

// New opens the store and loads catalog, cart, and settings. Each loads
// independently with safe defaults when absent or unreadable: empty catalog,
// empty cart, tax rate 18, tax inclusion on.
func New(cfg Config) (*App, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("db path required")
	}
	store, err := bbolt.NewStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a := &App{Store: store, settings: ports.DefaultSettings()}

	if entries, err := store.LoadCatalog(); err == nil && entries != nil {
		a.catalog = entries
	}
	if lines, err := store.LoadCart(); err == nil && lines != nil {
		a.cart.Lines = lines
	}
	if s, err := store.LoadSettings(); err == nil && s != nil {
		a.settings = *s
		a.settings.TaxRate = quote.ClampPercent(a.settings.TaxRate)
	}

	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// IngestResult reports one upload batch.
type IngestResult struct {
	RowsProcessed int
	Added         int
	Duplicates    int
	Failed        int
	Warnings      []string
}

// Ingest parses each file as a header-delimited rate card and folds the rows
// into the shared catalog. Files are processed as independent concurrent
// jobs; each completion appends its entries under the mutex and persists the
// cumulative catalog, so completion order never loses rows. A file that fails
// to parse contributes zero rows and one warning — never aborts the batch.
func (a *App) Ingest(paths []string) (*IngestResult, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	res := &IngestResult{}
	var persistErr error
	var wg sync.WaitGroup

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			name := filepath.Base(path)
			rows, err := csvfile.ReadFile(path)

			a.mu.Lock()
			defer a.mu.Unlock()

			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v (no usable rows)", name, err))
				return
			}
			for i, row := range rows {
				entry, err := catalog.BuildEntry(row, name)
				if err != nil {
					res.Failed++
					if len(res.Warnings) < maxIngestWarnings {
						// +2: one for the header row, one for 1-based numbering.
						res.Warnings = append(res.Warnings, fmt.Sprintf("%s row %d: missing name or valid price", name, i+2))
					}
					continue
				}
				if catalog.IsDuplicate(a.catalog, entry) {
					res.Duplicates++
					continue
				}
				a.catalog = append(a.catalog, entry)
				res.Added++
			}
			res.RowsProcessed += len(rows)
			if err := a.Store.SaveCatalog(a.catalog); err != nil {
				persistErr = err
			}
		}(path)
	}
	wg.Wait()

	if persistErr != nil {
		return res, fmt.Errorf("persist catalog: %w", persistErr)
	}
	return res, nil
}

// CrossRefResult reports one no-rebate cross-reference pass.
type CrossRefResult struct {
	RowsProcessed int
	Flagged       int
	Unmatched     int
	Warnings      []string
}

// CrossReference parses a no-rebate CSV and locks every catalog entry whose
// identifier keys intersect a row's identifier set. Preconditions: the
// catalog must be non-empty and the file must exist. Rows with no usable
// identifiers, and rows matching no entry, count as unmatched. Re-running
// the same file flags nothing new but reports the same unmatched count.
func (a *App) CrossReference(path string) (*CrossRefResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(a.catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if path == "" {
		return nil, ErrNoFiles
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("no-rebate file: %w", err)
	}

	res := &CrossRefResult{}
	rows, err := csvfile.ReadFile(path)
	if err != nil {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v (no usable rows)", filepath.Base(path), err))
		return res, nil
	}
	res.RowsProcessed = len(rows)

	for _, row := range rows {
		ids := catalog.IdentifierSet(row)
		flagged, matched := catalog.ApplyNoRebate(a.catalog, ids)
		res.Flagged += flagged
		if !matched {
			res.Unmatched++
			if len(ids) > 0 && len(res.Warnings) < maxCrossRefWarnings {
				res.Warnings = append(res.Warnings, fmt.Sprintf("no-rebate SKU not found in catalog (searched: %v)", ids))
			}
		}
	}

	if err := a.Store.SaveCatalog(a.catalog); err != nil {
		return res, fmt.Errorf("persist catalog: %w", err)
	}
	return res, nil
}

// Search runs the token-AND catalog search, optionally scoped to one source
// file. Read-only; results are copies in catalog order, capped at 100.
func (a *App) Search(query, scopeFile string) []ports.CatalogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return catalog.Search(a.catalog, query, scopeFile)
}

// SourceFiles lists the distinct rate-card files in the catalog, sorted.
func (a *App) SourceFiles() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return catalog.SourceFiles(a.catalog)
}

// Entries returns a snapshot of the catalog in insertion order.
func (a *App) Entries() []ports.CatalogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ports.CatalogEntry, len(a.catalog))
	copy(out, a.catalog)
	return out
}

// CatalogSize returns the number of catalog entries.
func (a *App) CatalogSize() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.catalog)
}

// LockedCount returns how many entries are rebate-locked.
func (a *App) LockedCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, e := range a.catalog {
		if e.NoRebateLocked {
			n++
		}
	}
	return n
}

// AddToQuote snapshots a catalog entry into the cart with the given default
// discount and persists the cart.
func (a *App) AddToQuote(e ports.CatalogEntry, defaultDiscount float64) (ports.QuoteLine, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	line := a.cart.Add(e, defaultDiscount)
	return line, a.Store.SaveCart(a.cart.Lines)
}

// AdjustQuantity applies a quantity delta (floored at 1) and persists.
func (a *App) AdjustQuantity(cartID string, delta int) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cart.AdjustQuantity(cartID, delta) {
		return ErrLineNotFound
	}
	return a.Store.SaveCart(a.cart.Lines)
}

// SetDiscount sets a line's extra discount and persists. Silently a no-op on
// rebate-locked lines.
func (a *App) SetDiscount(cartID string, pct float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cart.SetDiscount(cartID, pct) {
		return ErrLineNotFound
	}
	return a.Store.SaveCart(a.cart.Lines)
}

// RemoveLine deletes a quote line and persists.
func (a *App) RemoveLine(cartID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.cart.Remove(cartID) {
		return ErrLineNotFound
	}
	return a.Store.SaveCart(a.cart.Lines)
}

// ClearCart empties the quote and persists.
func (a *App) ClearCart() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cart.Clear()
	return a.Store.SaveCart(a.cart.Lines)
}

// Lines returns a snapshot of the quote lines in insertion order.
func (a *App) Lines() []ports.QuoteLine {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]ports.QuoteLine, len(a.cart.Lines))
	copy(out, a.cart.Lines)
	return out
}

// Settings returns the current persisted settings.
func (a *App) Settings() ports.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// SetTaxRate clamps the rate to [0,100] and persists.
func (a *App) SetTaxRate(v float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings.TaxRate = quote.ClampPercent(v)
	return a.Store.SaveSettings(&a.settings)
}

// SetIncludeTax toggles tax inclusion and persists.
func (a *App) SetIncludeTax(b bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings.IncludeTax = b
	return a.Store.SaveSettings(&a.settings)
}

// SetCompactPreview toggles the compact catalog preview and persists.
func (a *App) SetCompactPreview(b bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings.CompactPreview = b
	return a.Store.SaveSettings(&a.settings)
}

// Totals computes the quote aggregate under the current tax settings.
func (a *App) Totals() quote.Totals {
	a.mu.Lock()
	defer a.mu.Unlock()
	return quote.ComputeTotals(a.cart.Lines, a.settings.TaxRate, a.settings.IncludeTax)
}

// GenerateSummary renders the email-style HTML quote table.
// Precondition: the cart must be non-empty.
func (a *App) GenerateSummary() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.cart.Lines) == 0 {
		return "", ErrEmptyCart
	}
	return quote.RenderHTML(a.cart.Lines, a.settings.TaxRate, a.settings.IncludeTax)
}

// Wipe clears catalog and cart — in memory and in the store. This is the only
// way a no-rebate lock is ever reset. Settings survive.
func (a *App) Wipe() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.catalog = nil
	a.cart.Clear()
	return a.Store.WipeCatalog()
}
