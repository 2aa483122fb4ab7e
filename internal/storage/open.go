package storage

import (
	"context" // Context for the Redis ping
	"fmt"     // Error formatting

	"hardware_store/internal/config" // Application configuration

	"github.com/redis/go-redis/v9" // Redis client
)

// Open builds the storage backend named by the configuration
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		// Test Redis connection
		if _, err := client.Ping(ctx).Result(); err != nil {
			return nil, fmt.Errorf("connect to Redis: %w", err)
		}
		return NewRedisStore(client), nil
	case "mysql":
		// Database Source Name (DSN) for MySQL connection
		dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
		return OpenMySQL(dsn)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
