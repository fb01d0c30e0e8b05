package utils

import (
	"context"
	"log"
	"time"

	"campusportal/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
	// LockClient holds distributed room locks.
	LockClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// InitRedis connects the auth cache and, when room locks are distributed, the lock client.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
	if config.AppConfig.RoomLockMode == "redis" {
		LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Room Locks")
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching. It may be
// nil when Redis was never initialised; callers fall back to the database.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// RedisClients lists the initialised clients for health checks.
func RedisClients() []*redis.Client {
	var out []*redis.Client
	for _, c := range []*redis.Client{AuthCacheClient, LockClient} {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
