package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"urbanary/cmd/fx/assistantfx"
	"urbanary/cmd/fx/classifierfx"
	"urbanary/cmd/fx/dbfx"
	"urbanary/cmd/fx/loggerfx"
	"urbanary/cmd/fx/memcachefx"
	"urbanary/cmd/fx/placesfx"
	"urbanary/cmd/fx/searchfx"
	"urbanary/cmd/fx/venuesfx"
	"urbanary/internal/api/controllers"
	"urbanary/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		loggerfx.Module,
		dbfx.Module,
		memcachefx.Module,
		classifierfx.Module,
		placesfx.Module,
		searchfx.Module,
		assistantfx.Module,
		venuesfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	searchController *controllers.SearchController,
	assistantController *controllers.AssistantController,
	venuesController *controllers.VenuesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, searchController, assistantController, venuesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	searchController *controllers.SearchController,
	assistantController *controllers.AssistantController,
	venuesController *controllers.VenuesController) {

	api := r.Group("/api")

	api.POST("/search/hybrid", searchController.HybridSearch)
	api.POST("/assistant", assistantController.Ask)

	venuesGroup := api.Group("/venues")
	venuesGroup.POST("", venuesController.CreateVenue)
	venuesGroup.GET("", venuesController.ListVenues)
	venuesGroup.GET("/featured", venuesController.ListFeatured)
	venuesGroup.GET("/category/:category", venuesController.ListByCategory)
	venuesGroup.GET("/:id", venuesController.GetVenueById)

	api.POST("/venue-categories", venuesController.CreateCategory)
	api.GET("/venue-categories", venuesController.ListCategories)
}
