// Package bbolt implements the ports.Storage interface using bbolt (embedded
// B+ tree). Catalog, cart, and settings live in separate top-level buckets as
// JSON-serialized blobs. Writes are transactional — a crash mid-write cannot
// corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vivekgondil/QuoteGenerator/internal/ports"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketCatalog  = []byte("catalog")
	bucketCart     = []byte("cart")
	bucketSettings = []byte("settings")
	keyEntries     = []byte("entries")
	keyLines       = []byte("lines")
	keyValues      = []byte("values")
)

// Store implements ports.Storage backed by bbolt.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// put marshals v and writes it under bucket/key in one transaction.
func (s *Store) put(bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", bucket, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucket)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// get reads the raw bytes under bucket/key. Returns nil when the bucket or
// key does not exist. The returned slice is a copy — bbolt slices are only
// valid within their transaction.
func (s *Store) get(bucket, key []byte) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get(key); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SaveCatalog persists the full catalog, overwriting any prior state.
func (s *Store) SaveCatalog(entries []ports.CatalogEntry) error {
	if entries == nil {
		entries = []ports.CatalogEntry{}
	}
	return s.put(bucketCatalog, keyEntries, entries)
}

// LoadCatalog retrieves the full catalog.
// Returns nil, nil if no catalog has been stored (fresh database).
func (s *Store) LoadCatalog() ([]ports.CatalogEntry, error) {
	data, err := s.get(bucketCatalog, keyEntries)
	if err != nil || data == nil {
		return nil, err
	}
	var entries []ports.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return entries, nil
}

// SaveCart persists the active quote cart, overwriting any prior state.
func (s *Store) SaveCart(lines []ports.QuoteLine) error {
	if lines == nil {
		lines = []ports.QuoteLine{}
	}
	return s.put(bucketCart, keyLines, lines)
}

// LoadCart retrieves the active quote cart.
// Returns nil, nil if no cart has been stored.
func (s *Store) LoadCart() ([]ports.QuoteLine, error) {
	data, err := s.get(bucketCart, keyLines)
	if err != nil || data == nil {
		return nil, err
	}
	var lines []ports.QuoteLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}
	return lines, nil
}

// SaveSettings persists tax and display settings.
func (s *Store) SaveSettings(set *ports.Settings) error {
	if set == nil {
		return fmt.Errorf("nil settings")
	}
	return s.put(bucketSettings, keyValues, set)
}

// LoadSettings retrieves persisted settings.
// Returns nil, nil if nothing has been stored.
func (s *Store) LoadSettings() (*ports.Settings, error) {
	data, err := s.get(bucketSettings, keyValues)
	if err != nil || data == nil {
		return nil, err
	}
	var set ports.Settings
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &set, nil
}

// WipeCatalog removes catalog and cart buckets. Settings survive a wipe.
// Idempotent: wiping a fresh database is not an error.
func (s *Store) WipeCatalog() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketCatalog, bucketCart} {
			if err := tx.DeleteBucket(bucket); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
		}
		return nil
	})
}
