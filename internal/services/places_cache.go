package services

import (
	"sync"
	"time"
)

// placesCache memoizes raw text-search payloads per lowercased query so a
// repeated query within the TTL never reaches the upstream again.
type placesCache struct {
	mu   sync.RWMutex
	data map[string]placesCacheEntry
	ttl  time.Duration
	now  func() time.Time
}

type placesCacheEntry struct {
	results  []placeResult
	storedAt time.Time
}

func newPlacesCache(ttl time.Duration, now func() time.Time) *placesCache {
	return &placesCache{
		data: make(map[string]placesCacheEntry),
		ttl:  ttl,
		now:  now,
	}
}

func (c *placesCache) get(key string) ([]placeResult, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()
	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.results, true
}

func (c *placesCache) put(key string, results []placeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Opportunistic cleanup keeps the map from growing unbounded.
	for k, e := range c.data {
		if c.now().Sub(e.storedAt) > c.ttl {
			delete(c.data, k)
		}
	}
	c.data[key] = placesCacheEntry{results: results, storedAt: c.now()}
}
