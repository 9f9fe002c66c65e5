package venuesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"urbanary/internal/api/controllers"
	"urbanary/internal/repositories"
	"urbanary/internal/services"
	"urbanary/pkg/logger"
)

var Module = fx.Provide(
	provideVenueRepo,
	provideVenueService,
	provideVenuesController)

func provideVenueRepo(db *gorm.DB) repositories.VenueRepository {
	return repositories.NewVenueRepository(db)
}

func provideVenueService(venueRepo repositories.VenueRepository, l logger.Logger) services.VenueServiceInterface {
	return services.NewVenueService(venueRepo, l)
}

func provideVenuesController(venueService services.VenueServiceInterface) *controllers.VenuesController {
	return controllers.NewVenuesController(venueService)
}
