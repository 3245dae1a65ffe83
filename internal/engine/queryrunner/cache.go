package queryrunner

import "sync"

// ResultCache maps query identities to the content hash of the result
// bytes last written to (or confirmed present in) durable storage. It is
// owned by one build session and is cold on process start; entries are
// overwritten, never deleted.
type ResultCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewResultCache creates an empty result cache.
func NewResultCache() *ResultCache {
	return &ResultCache{entries: make(map[string]string)}
}

// Get returns the cached hash for the given identity.
func (c *ResultCache) Get(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	hash, ok := c.entries[id]
	return hash, ok
}

// Put records the hash last persisted for the identity, replacing any
// previous entry.
func (c *ResultCache) Put(id, hash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = hash
}

// Len reports the number of cached identities.
func (c *ResultCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
