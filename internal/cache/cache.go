// Package cache provides the read-through cache shared by the catalog
// repositories: populate lazily on first miss, serve from memory until
// Invalidate drops everything.
package cache

import "sync"

// Loader fetches the value for a key from the backing store
type Loader[K comparable, V any] func(K) (V, error)

// Cache is a read-through cache keyed by the full parameter tuple of the
// backing query. Safe for concurrent use; population and invalidation hold
// one coarse lock, which matches the all-or-nothing invalidation contract.
type Cache[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	load    Loader[K, V]
}

// New creates a cache backed by the given loader
func New[K comparable, V any](load Loader[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]V),
		load:    load,
	}
}

// Get returns the cached value for key, loading and storing it on first use.
// Load failures are returned to the caller and nothing is cached for the key.
func (c *Cache[K, V]) Get(key K) (V, error) {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return value, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have loaded the key while we waited for the lock
	if value, ok := c.entries[key]; ok {
		return value, nil
	}

	value, err := c.load(key)
	if err != nil {
		var zero V
		return zero, err
	}
	c.entries[key] = value
	return value, nil
}

// Invalidate drops the entire cache unconditionally
func (c *Cache[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[K]V)
}
