// ABOUTME: Charm KV-backed store with automatic cloud sync.
// ABOUTME: Data is E2E encrypted with the user's SSH key via Charm Cloud.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/charm/kv"
	"github.com/dgraph-io/badger/v3"
)

const charmDBName = "caltrack"

type charmKV struct {
	kv *kv.KV
	mu sync.RWMutex
}

// OpenCharm opens the Charm Cloud-synced store, pulling remote state on
// startup. Writes sync automatically.
func OpenCharm() (Store, error) {
	db, err := kv.OpenWithDefaults(charmDBName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}
	// Pull remote data on startup; a failed sync still leaves local data usable.
	_ = db.Sync()
	return &recordStore{kv: &charmKV{kv: db}}, nil
}

func (c *charmKV) get(key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, err := c.kv.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (c *charmKV) set(key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.kv.Set([]byte(key), value); err != nil {
		return err
	}
	_ = c.kv.Sync()
	return nil
}

func (c *charmKV) delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.kv.Delete([]byte(key)); err != nil {
		return err
	}
	_ = c.kv.Sync()
	return nil
}

func (c *charmKV) listByPrefix(prefix string) (map[string][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, err
	}

	result := make(map[string][]byte)
	prefixBytes := []byte(prefix)
	for _, key := range keys {
		if !bytes.HasPrefix(key, prefixBytes) {
			continue
		}
		value, err := c.kv.Get(key)
		if err != nil {
			return nil, err
		}
		result[string(key)] = value
	}
	return result, nil
}

func (c *charmKV) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kv.Close()
}
