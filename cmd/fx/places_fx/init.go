package places_fx

import (
	"os"

	"go.uber.org/fx"

	"voyago/internal/services"
)

var Module = fx.Provide(providePlaceCatalog)

func providePlaceCatalog() services.PlaceCatalogInterface {
	return services.NewGooglePlacesClient(os.Getenv("GOOGLE_MAPS_API_KEY"))
}
