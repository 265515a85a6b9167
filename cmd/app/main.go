package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"golang.org/x/time/rate"

	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/distance_matrix_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/places_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, using system environment variables")
	}

	app := fx.New(
		places_fx.Module,
		distance_matrix_fx.Module,
		itinerary_fx.Module,
		controllers_fx.Module,

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
					port = "5000"
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
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	autocompleteController *controllers.AutocompleteController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, itineraryController, placesController, autocompleteController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	autocompleteController *controllers.AutocompleteController) {

	api := r.Group("/api")
	api.POST("/itinerary", itineraryController.CreateItinerary)
	api.GET("/places", placesController.GetPlaces)

	// Autocomplete fires on every keystroke; keep it on a budget.
	limiter := middleware.NewRateLimiter(rate.Every(time.Second/5), 5)
	api.GET("/autocomplete", limiter.Limit(), autocompleteController.GetSuggestions)
}
