package assistantfx

import (
	"os"
	"strings"

	"go.uber.org/fx"
	"urbanary/internal/api/controllers"
	"urbanary/internal/services"
	"urbanary/pkg/logger"
)

var Module = fx.Provide(
	provideAssistantService,
	provideAssistantController)

func provideAssistantService(places services.PlacesServiceInterface, l logger.Logger) services.AssistantServiceInterface {
	return services.NewAssistantService(places, cityName(), l)
}

func provideAssistantController(assistantService services.AssistantServiceInterface) *controllers.AssistantController {
	return controllers.NewAssistantController(assistantService)
}

// cityName strips the country suffix from PLACES_HOME_CITY for use in
// assistant copy, e.g. "Leeds, UK" reads as "Leeds".
func cityName() string {
	home := os.Getenv("PLACES_HOME_CITY")
	if home == "" {
		return ""
	}
	name, _, _ := strings.Cut(home, ",")
	return strings.TrimSpace(name)
}
