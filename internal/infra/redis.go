package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the Redis named by REDIS_URL. Returns nil when no
// URL is configured; callers fall back to in-process caching.
func InitRedis() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, using in-memory travel cache")
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}
