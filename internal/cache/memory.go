package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

var _ Cache = (*MemoryCache)(nil)

// MemoryCache keeps formulas in memory with expiry
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new memory cache. A zero ttl keeps entries forever.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &MemoryCache{
		cache: gocache.New(ttl, 10*time.Minute),
	}
}

// Get retrieves a formula from the cache
func (c *MemoryCache) Get(key string) (string, bool) {
	if val, found := c.cache.Get(key); found {
		return val.(string), true
	}
	return "", false
}

// Set stores a formula with the default ttl
func (c *MemoryCache) Set(key string, formula string) {
	c.cache.SetDefault(key, formula)
}

// Len returns the number of cached formulas, expired ones included
func (c *MemoryCache) Len() int {
	return c.cache.ItemCount()
}

// snapshot returns all unexpired formulas with their expiry time.
// A zero time means the entry never expires.
func (c *MemoryCache) snapshot() map[string]snapshotEntry {
	items := c.cache.Items()
	out := make(map[string]snapshotEntry, len(items))
	for k, item := range items {
		formula, ok := item.Object.(string)
		if !ok {
			continue
		}
		entry := snapshotEntry{Formula: formula}
		if item.Expiration > 0 {
			entry.ExpiresAt = time.Unix(0, item.Expiration)
		}
		out[k] = entry
	}
	return out
}

// restore puts a snapshot entry back, keeping its remaining lifetime
func (c *MemoryCache) restore(key string, entry snapshotEntry, now time.Time) {
	if entry.ExpiresAt.IsZero() {
		c.cache.Set(key, entry.Formula, gocache.NoExpiration)
		return
	}
	if remaining := entry.ExpiresAt.Sub(now); remaining > 0 {
		c.cache.Set(key, entry.Formula, remaining)
	}
}
