package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	a, err := New(Config{DBPath: path})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const masterCard = "SKU Title,SKU ID,ERP Price\nWidget A,W-100,100\nGadget B,G-200,250\n"

func TestNew_RequiresDBPath(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestIngest_NoFiles(t *testing.T) {
	a := newTestApp(t)
	_, err := a.Ingest(nil)
	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestIngest_CountsRows(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	path := writeCSV(t, dir, "master.csv", "SKU Title,ERP Price\nWidget A,100\nNo Price Row,\n")

	res, err := a.Ingest([]string{path})
	require.NoError(t, err)

	assert.Equal(t, 2, res.RowsProcessed)
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 0, res.Duplicates)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "master.csv row 3")
	assert.Equal(t, 1, a.CatalogSize())
}

func TestIngest_DedupeAcrossFiles(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	p1 := writeCSV(t, dir, "q1.csv", masterCard)

	res, err := a.Ingest([]string{p1})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)

	p2 := writeCSV(t, dir, "q2.csv", "SKU Title,SKU ID,ERP Price\nWidget A,W-100,100\nNew C,N-300,75\n")
	res, err = a.Ingest([]string{p2})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Added)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 3, a.CatalogSize())
}

func TestIngest_UnparsableFileWarnsAndContinues(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	bad := writeCSV(t, dir, "bad.csv", "Name,Price\n\"unterminated,10\n")
	good := writeCSV(t, dir, "good.csv", masterCard)

	res, err := a.Ingest([]string{bad, good})
	require.NoError(t, err)

	assert.Equal(t, 2, res.RowsProcessed)
	assert.Equal(t, 2, res.Added)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "bad.csv")
	assert.Equal(t, 2, a.CatalogSize())
}

func TestCrossReference_EmptyCatalog(t *testing.T) {
	a := newTestApp(t)
	path := writeCSV(t, t.TempDir(), "norebate.csv", "SKU ID\nW-100\n")
	_, err := a.CrossReference(path)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestCrossReference_MissingFile(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	_, err := a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)

	_, err = a.CrossReference(filepath.Join(dir, "nope.csv"))
	assert.Error(t, err)
}

func TestCrossReference_LocksAndIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	_, err := a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)

	nr := writeCSV(t, dir, "norebate.csv", "SKU ID\nW-100\nZZ-999\n")
	res, err := a.CrossReference(nr)
	require.NoError(t, err)

	assert.Equal(t, 2, res.RowsProcessed)
	assert.Equal(t, 1, res.Flagged)
	assert.Equal(t, 1, res.Unmatched)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 1, a.LockedCount())

	// Re-running flags nothing new but reports the same unmatched rows.
	res, err = a.CrossReference(nr)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Flagged)
	assert.Equal(t, 1, res.Unmatched)
	assert.Equal(t, 1, a.LockedCount())
}

func TestSearch_ScopedAndUnscoped(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	_, err := a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)

	assert.Len(t, a.Search("widget", ""), 1)
	assert.Empty(t, a.Search("widget gadget", ""))
	assert.Empty(t, a.Search("widget", "other.csv"))
	assert.Equal(t, []string{"master.csv"}, a.SourceFiles())
}

func TestQuoteFlow_EndToEnd(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	_, err := a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)

	results := a.Search("widget", "")
	require.Len(t, results, 1)

	line, err := a.AddToQuote(results[0], 10)
	require.NoError(t, err)
	require.NoError(t, a.AdjustQuantity(line.CartID, 1))

	tot := a.Totals()
	assert.InDelta(t, 180.0, tot.Subtotal, 1e-9)
	assert.InDelta(t, 212.40, tot.GrandTotal, 1e-9)

	html, err := a.GenerateSummary()
	require.NoError(t, err)
	assert.Contains(t, html, "Widget A")
	assert.Contains(t, html, "₹ 212.40")
}

func TestAddToQuote_LockedEntryDiscountImmutable(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	_, err := a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)
	_, err = a.CrossReference(writeCSV(t, dir, "norebate.csv", "SKU ID\nW-100\n"))
	require.NoError(t, err)

	results := a.Search("widget", "")
	require.Len(t, results, 1)
	require.True(t, results[0].NoRebateLocked)

	line, err := a.AddToQuote(results[0], 20)
	require.NoError(t, err)
	assert.Equal(t, 0.0, line.ExtraDiscountPercent)

	require.NoError(t, a.SetDiscount(line.CartID, 50))
	assert.Equal(t, 0.0, a.Lines()[0].ExtraDiscountPercent)
}

func TestQuoteLine_Errors(t *testing.T) {
	a := newTestApp(t)
	assert.ErrorIs(t, a.AdjustQuantity("missing", 1), ErrLineNotFound)
	assert.ErrorIs(t, a.SetDiscount("missing", 10), ErrLineNotFound)
	assert.ErrorIs(t, a.RemoveLine("missing"), ErrLineNotFound)

	_, err := a.GenerateSummary()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSettings_PersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	dir := t.TempDir()

	a, err := New(Config{DBPath: path})
	require.NoError(t, err)
	_, err = a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)

	results := a.Search("gadget", "")
	require.Len(t, results, 1)
	_, err = a.AddToQuote(results[0], 0)
	require.NoError(t, err)

	require.NoError(t, a.SetTaxRate(12))
	require.NoError(t, a.SetIncludeTax(false))
	require.NoError(t, a.Close())

	a2, err := New(Config{DBPath: path})
	require.NoError(t, err)
	defer a2.Close()

	assert.Equal(t, 2, a2.CatalogSize())
	assert.Len(t, a2.Lines(), 1)
	assert.Equal(t, 12.0, a2.Settings().TaxRate)
	assert.False(t, a2.Settings().IncludeTax)
}

func TestWipe_PreservesSettings(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	_, err := a.Ingest([]string{writeCSV(t, dir, "master.csv", masterCard)})
	require.NoError(t, err)
	require.NoError(t, a.SetTaxRate(5))

	require.NoError(t, a.Wipe())

	assert.Equal(t, 0, a.CatalogSize())
	assert.Empty(t, a.Lines())
	assert.Equal(t, 5.0, a.Settings().TaxRate)
}

func TestSetTaxRate_Clamps(t *testing.T) {
	a := newTestApp(t)
	require.NoError(t, a.SetTaxRate(250))
	assert.Equal(t, 100.0, a.Settings().TaxRate)
	require.NoError(t, a.SetTaxRate(-3))
	assert.Equal(t, 0.0, a.Settings().TaxRate)
}
