package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"urbanary/internal/models/response_models"
)

func steps(intent string) []response_models.StepResult {
	return []response_models.StepResult{{Intent: intent, Categories: []string{"Pub"}}}
}

func TestSearchResultsGetPut(t *testing.T) {
	s := NewSearchResults(10*time.Minute, nil)

	_, ok := s.Get("sess-1", "pub crawl")
	assert.False(t, ok)

	s.Put("sess-1", "pub crawl", steps("Visit 1"))

	got, ok := s.Get("sess-1", "pub crawl")
	require.True(t, ok)
	assert.Equal(t, steps("Visit 1"), got)
}

func TestSearchResultsKeyIsCaseInsensitiveOnQuery(t *testing.T) {
	s := NewSearchResults(10*time.Minute, nil)
	s.Put("sess-1", "Pub Crawl", steps("Visit 1"))

	_, ok := s.Get("sess-1", "pub CRAWL")
	assert.True(t, ok)
}

func TestSearchResultsKeyedBySession(t *testing.T) {
	s := NewSearchResults(10*time.Minute, nil)
	s.Put("sess-1", "pub crawl", steps("Visit 1"))

	_, ok := s.Get("sess-2", "pub crawl")
	assert.False(t, ok)
}

func TestSearchResultsExpiry(t *testing.T) {
	current := time.Now()
	s := NewSearchResults(10*time.Minute, func() time.Time { return current })

	s.Put("sess-1", "pub crawl", steps("Visit 1"))

	current = current.Add(9 * time.Minute)
	_, ok := s.Get("sess-1", "pub crawl")
	assert.True(t, ok, "entry inside TTL must survive")

	current = current.Add(2 * time.Minute)
	_, ok = s.Get("sess-1", "pub crawl")
	assert.False(t, ok, "entry past TTL must be rejected")
}

func TestSearchResultsSweep(t *testing.T) {
	current := time.Now()
	s := NewSearchResults(10*time.Minute, func() time.Time { return current })

	s.Put("sess-1", "old query", steps("Visit 1"))
	current = current.Add(11 * time.Minute)
	s.Put("sess-1", "new query", steps("Visit 2"))

	s.Sweep()

	_, ok := s.Get("sess-1", "old query")
	assert.False(t, ok)
	_, ok = s.Get("sess-1", "new query")
	assert.True(t, ok)
}

func TestSearchResultsIdempotentReplay(t *testing.T) {
	s := NewSearchResults(10*time.Minute, nil)
	s.Put("sess-1", "pub crawl", steps("Visit 1"))

	first, _ := s.Get("sess-1", "pub crawl")
	second, _ := s.Get("sess-1", "pub crawl")
	assert.Equal(t, first, second)
}
