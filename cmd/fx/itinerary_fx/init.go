package itinerary_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService(
	catalog services.PlaceCatalogInterface,
	travel services.TravelTimeServiceInterface) services.ItineraryServiceInterface {

	return services.NewItineraryService(catalog, travel)
}
