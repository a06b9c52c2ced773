// Package txcache implements a persistent, JSON-backed map from
// transaction id to parent-tx metadata, so the orchestrator can skip
// re-fetching a bundle it has already processed.
package txcache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/PatricioNapoli/axer/arweave"
)

// Cache is a map from tx id to ParentTx, persisted as a single JSON
// file. Safe for concurrent use, although the orchestrator funnels all
// batch-mode mutation through one goroutine anyway.
type Cache struct {
	mu   sync.Mutex
	path string
	data map[string]arweave.ParentTx
}

// Load reads the cache file at path, or starts empty and ensures the
// parent directory exists if it does not. A file that exists but is
// not valid JSON is ErrCorrupt.
func Load(path string) (*Cache, error) {
	c := &Cache{path: path, data: make(map[string]arweave.ParentTx)}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		return c, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(raw, &c.data); err != nil {
		return nil, ErrCorrupt
	}
	return c, nil
}

// Contains reports whether id is present in the cache.
func (c *Cache) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.data[id]
	return ok
}

// Get returns the cached ParentTx for id, if any.
func (c *Cache) Get(id string) (arweave.ParentTx, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tx, ok := c.data[id]
	return tx, ok
}

// Insert records tx under id, overwriting any prior entry.
func (c *Cache) Insert(id string, tx arweave.ParentTx) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[id] = tx
}

// Flush rewrites the cache file with the current contents in a single
// overwrite. A mid-run abort loses uninserted entries but never
// corrupts already-persisted state.
func (c *Cache) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, err := json.Marshal(c.data)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, raw, 0o644)
}
