// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"galaxydental/config"
)

var (
	// SessionClient holds booking wizard sessions.
	SessionClient *redis.Client
	// PrefsClient holds per-client preferences such as the theme flag.
	PrefsClient *redis.Client
)

// InitSessionCache initializes the Redis client for booking sessions.
func InitSessionCache() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the booking session client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionCache()
	}
	return SessionClient
}

// InitPrefsCache initializes the Redis client for client preferences.
func InitPrefsCache() {
	PrefsClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PrefsClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Preferences): %v", err)
	}
}

// GetPrefsClient returns the preferences client.
func GetPrefsClient() *redis.Client {
	if PrefsClient == nil {
		InitPrefsCache()
	}
	return PrefsClient
}
