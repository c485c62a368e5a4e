package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vivekgondil/QuoteGenerator/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_CatalogRoundTrip(t *testing.T) {
	s := newTestStore(t)

	entries := []ports.CatalogEntry{
		{ID: "1", DisplayName: "Widget A", ERPPrice: 1000, IdentifierKeys: []string{"w100"}},
		{ID: "2", DisplayName: "Widget B", ERPPrice: 2000, NoRebateLocked: true},
	}
	require.NoError(t, s.SaveCatalog(entries))

	got, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestStore_LoadCatalog_Fresh(t *testing.T) {
	s := newTestStore(t)
	got, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_CartRoundTrip(t *testing.T) {
	s := newTestStore(t)

	lines := []ports.QuoteLine{
		{CartID: "c1", DisplayName: "Widget A", Quantity: 3, ExtraDiscountPercent: 10},
	}
	require.NoError(t, s.SaveCart(lines))

	got, err := s.LoadCart()
	require.NoError(t, err)
	assert.Equal(t, lines, got)
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	got, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Nil(t, got)

	set := &ports.Settings{TaxRate: 12.5, IncludeTax: false, CompactPreview: true}
	require.NoError(t, s.SaveSettings(set))

	got, err = s.LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *set, *got)
}

func TestStore_SaveSettings_Nil(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveSettings(nil))
}

func TestStore_WipePreservesSettings(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveCatalog([]ports.CatalogEntry{{ID: "1"}}))
	require.NoError(t, s.SaveCart([]ports.QuoteLine{{CartID: "c1"}}))
	require.NoError(t, s.SaveSettings(&ports.Settings{TaxRate: 5}))

	require.NoError(t, s.WipeCatalog())

	catalog, err := s.LoadCatalog()
	require.NoError(t, err)
	assert.Nil(t, catalog)

	cart, err := s.LoadCart()
	require.NoError(t, err)
	assert.Nil(t, cart)

	set, err := s.LoadSettings()
	require.NoError(t, err)
	require.NotNil(t, set)
	assert.Equal(t, 5.0, set.TaxRate)
}

func TestStore_WipeIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WipeCatalog())
	require.NoError(t, s.WipeCatalog())
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	s, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SaveCatalog([]ports.CatalogEntry{{ID: "1", DisplayName: "Widget"}}))
	require.NoError(t, s.Close())

	s2, err := NewStore(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.LoadCatalog()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Widget", got[0].DisplayName)
}
