// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"rockgrip/config"

	"github.com/go-redis/redis/v8"
)

// LockClient is the dedicated Redis client for submission locks.
var LockClient *redis.Client

// InitLockCache initializes the Redis client used for per-submitter locks.
func InitLockCache() {
	LockClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := LockClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Locks): %v", err)
	}
}

// GetLockClient returns the Redis client for submission locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		InitLockCache()
	}
	return LockClient
}
