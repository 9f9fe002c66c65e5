package searchfx

import (
	"go.uber.org/fx"
	"urbanary/internal/api/controllers"
	"urbanary/internal/services"
	"urbanary/pkg/logger"
	mem "urbanary/pkg/memcache"
	"urbanary/pkg/utils"
)

var Module = fx.Provide(
	provideSplitterService,
	provideCategoryService,
	provideSearchService,
	provideSearchController)

func provideSplitterService() services.SplitterServiceInterface {
	return services.NewSplitterService(services.DefaultSplitterConfig())
}

func provideCategoryService(classifier utils.ClassifierClientInterface, l logger.Logger) services.CategoryServiceInterface {
	return services.NewCategoryService(classifier, l)
}

func provideSearchService(
	splitter services.SplitterServiceInterface,
	categories services.CategoryServiceInterface,
	places services.PlacesServiceInterface,
	sessions mem.SearchResultStore,
	l logger.Logger,
) services.SearchServiceInterface {
	return services.NewSearchService(splitter, categories, places, sessions, services.SearchConfig{}, l)
}

func provideSearchController(searchService services.SearchServiceInterface) *controllers.SearchController {
	return controllers.NewSearchController(searchService)
}
