// Package ports defines the interfaces (contracts) that adapters must implement,
// plus the persisted data types shared across the application. Domain logic
// depends only on these types, never on concrete storage implementations.
package ports

// CatalogEntry is one SKU ingested from a vendor rate card.
//
// DisplayName + ERPPrice form the deduplication key: no two entries in a
// catalog may share both. The catalog is insertion-ordered; order is preserved
// for display but carries no other meaning.
type CatalogEntry struct {
	ID          string `json:"id"`
	SourceFile  string `json:"sourceFile"`
	DisplayName string `json:"displayName"`
	Title       string `json:"title"`

	// SearchBlob is the lowercased concatenation of every non-price column
	// value from the source row. Free-text search squashes it to alphanumerics
	// at match time.
	SearchBlob string `json:"searchBlob"`

	// IdentifierKeys holds normalized (lowercase, alphanumeric-only) SKU /
	// product / part number values used by the no-rebate cross-reference.
	IdentifierKeys []string `json:"identifierKeys"`

	ERPPrice        float64 `json:"erpPrice"`
	UnitSellPrice   float64 `json:"unitSellPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`

	// NoRebateLocked is set by the cross-reference pass and never reset
	// except by a full database wipe.
	NoRebateLocked bool `json:"isNoRebateLocked"`
}

// QuoteLine is one line in the active quote. Entry fields are snapshotted at
// add time — later catalog mutations do not reach back into existing lines.
type QuoteLine struct {
	CartID          string  `json:"cartId"`
	DisplayName     string  `json:"displayName"`
	Title           string  `json:"title"`
	ERPPrice        float64 `json:"erpPrice"`
	UnitSellPrice   float64 `json:"unitSellPrice"`
	DiscountedPrice float64 `json:"discountedPrice"`
	NoRebateLocked  bool    `json:"isNoRebateLocked"`

	// Quantity is always >= 1.
	Quantity int `json:"quantity"`

	// ExtraDiscountPercent is clamped to [0,100] and pinned to 0 while the
	// line is rebate-locked.
	ExtraDiscountPercent float64 `json:"extraDiscountPercent"`
}

// Settings holds the persisted display and tax configuration.
type Settings struct {
	TaxRate        float64 `json:"taxRate"`
	IncludeTax     bool    `json:"includeTax"`
	CompactPreview bool    `json:"compactPreview"`
}

// DefaultSettings returns the settings used when nothing has been persisted
// yet (or the persisted blob is unreadable).
func DefaultSettings() Settings {
	return Settings{TaxRate: 18, IncludeTax: true}
}

// Storage persists catalog, cart, and settings to durable storage.
//
// Crash safety: every Save must be transactional — a crash mid-write must not
// corrupt previously committed data. Load methods return (nil, nil) when
// nothing has been stored yet so callers can fall back to defaults.
type Storage interface {
	// SaveCatalog overwrites the full catalog.
	SaveCatalog(entries []CatalogEntry) error

	// LoadCatalog retrieves the full catalog, preserving insertion order.
	LoadCatalog() ([]CatalogEntry, error)

	// SaveCart overwrites the active quote cart.
	SaveCart(lines []QuoteLine) error

	// LoadCart retrieves the active quote cart.
	LoadCart() ([]QuoteLine, error)

	// SaveSettings overwrites the persisted settings.
	SaveSettings(s *Settings) error

	// LoadSettings retrieves the persisted settings.
	LoadSettings() (*Settings, error)

	// WipeCatalog removes the catalog and cart. Settings survive.
	// Idempotent: wiping an empty store is not an error.
	WipeCatalog() error

	// Close releases the underlying database.
	Close() error
}
