package memcachefx

import (
	"log"
	"os"
	"time"

	"go.uber.org/fx"
	mem "urbanary/pkg/memcache"
)

const defaultSessionTTL = 10 * time.Minute

var Module = fx.Provide(provideSearchResultStore)

func provideSearchResultStore() mem.SearchResultStore {
	ttl := defaultSessionTTL
	if raw := os.Getenv("SEARCH_SESSION_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid SEARCH_SESSION_TTL %q, using default: %v", raw, err)
		} else {
			ttl = parsed
		}
	}
	return mem.NewSearchResults(ttl, nil)
}
