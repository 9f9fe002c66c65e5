// pkg/memcache/search_results.go
package memcache

import (
	"strings"
	"sync"
	"time"

	"urbanary/internal/models/response_models"
)

// SearchResultStore memoizes assembled step results per (session, query).
// Entries are immutable once written; a repeated identical query within the
// TTL returns the cached entry unchanged.
type SearchResultStore interface {
	Get(sessionID, query string) ([]response_models.StepResult, bool)
	Put(sessionID, query string, steps []response_models.StepResult)

	// Sweep removes expired entries. Invoked lazily at the start of each
	// request cycle rather than on a timer.
	Sweep()
}

type entry struct {
	steps     []response_models.StepResult
	timestamp time.Time
}

type SearchResults struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

// NewSearchResults builds a store with the given TTL. now is injectable so
// tests can drive expiry with a fake clock; pass nil for time.Now.
func NewSearchResults(ttl time.Duration, now func() time.Time) *SearchResults {
	if now == nil {
		now = time.Now
	}
	return &SearchResults{
		data: make(map[string]entry),
		ttl:  ttl,
		now:  now,
	}
}

func cacheKey(sessionID, query string) string {
	return sessionID + ":" + strings.ToLower(query)
}

func (s *SearchResults) Get(sessionID, query string) ([]response_models.StepResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[cacheKey(sessionID, query)]
	if !ok || s.now().Sub(e.timestamp) > s.ttl {
		return nil, false
	}
	return e.steps, true
}

func (s *SearchResults) Put(sessionID, query string, steps []response_models.StepResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[cacheKey(sessionID, query)] = entry{
		steps:     steps,
		timestamp: s.now(),
	}
}

func (s *SearchResults) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, e := range s.data {
		if now.Sub(e.timestamp) > s.ttl {
			delete(s.data, k)
		}
	}
}
