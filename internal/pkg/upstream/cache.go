package upstream

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var snapshotBucket = []byte("upstream_snapshots")

// Cache stores the last good payload of each feed so a feed outage
// degrades to slightly stale data instead of an empty dashboard.
type Cache struct {
	db *bolt.DB
}

// OpenCache opens (creating if needed) the bbolt file at path.
func OpenCache(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening snapshot cache: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing snapshot cache: %w", err)
	}

	return &Cache{db: db}, nil
}

// Put stores the raw payload for a feed, replacing any previous one.
func (c *Cache) Put(feed string, payload []byte) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(snapshotBucket).Put([]byte(feed), payload)
	})
}

// Get returns the cached payload for a feed, or nil when none exists.
func (c *Cache) Get(feed string) ([]byte, error) {
	var payload []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(snapshotBucket).Get([]byte(feed)); v != nil {
			payload = make([]byte, len(v))
			copy(payload, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}
