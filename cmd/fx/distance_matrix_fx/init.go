package distance_matrix_fx

import (
	"os"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"voyago/internal/infra"
	"voyago/internal/services"
)

var Module = fx.Provide(infra.InitRedis, providePairCache, provideTravelTimeService)

func providePairCache(client *redis.Client) services.TravelPairCache {
	if client == nil {
		return services.NewInMemoryPairCache()
	}
	return services.NewRedisPairCache(client)
}

func provideTravelTimeService(cache services.TravelPairCache) services.TravelTimeServiceInterface {
	return services.NewGoogleDistanceMatrixClient(os.Getenv("GOOGLE_MAPS_API_KEY"), cache)
}
