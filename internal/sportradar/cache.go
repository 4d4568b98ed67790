// ABOUTME: Badger-backed response cache for the SportRadar client.
// ABOUTME: TTL-bounded so repeated syncs don't burn trial-API quota.
package sportradar

import (
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

// Cache stores raw API response bodies keyed by endpoint path.
type Cache struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenCache opens (or creates) a badger cache at dir. Entries expire after
// ttl; a ttl of zero disables expiry.
func OpenCache(dir string, ttl time.Duration) (*Cache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open response cache: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Get returns the cached body for key, if present and unexpired.
func (c *Cache) Get(key string) ([]byte, bool) {
	var val []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		val, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores a response body under key.
func (c *Cache) Set(key string, val []byte) error {
	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), val)
		if c.ttl > 0 {
			e = e.WithTTL(c.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Delete drops a cached entry.
func (c *Cache) Delete(key string) error {
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close closes the underlying badger store.
func (c *Cache) Close() error {
	return c.db.Close()
}
