package placesfx

import (
	"log"
	"os"
	"time"

	"go.uber.org/fx"
	"urbanary/internal/services"
	"urbanary/pkg/logger"
)

var Module = fx.Provide(providePlacesService)

func providePlacesService(l logger.Logger) services.PlacesServiceInterface {
	cfg := services.PlacesConfig{
		APIKey:   os.Getenv("GOOGLE_PLACES_API_KEY"),
		HomeCity: os.Getenv("PLACES_HOME_CITY"),
	}
	if raw := os.Getenv("PLACES_CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid PLACES_CACHE_TTL %q, using default: %v", raw, err)
		} else {
			cfg.CacheTTL = parsed
		}
	}
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("Invalid UPSTREAM_TIMEOUT %q, using default: %v", raw, err)
		} else {
			cfg.Timeout = parsed
		}
	}
	return services.NewPlacesService(cfg, l)
}
