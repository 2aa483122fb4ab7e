package storage

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding

	"github.com/redis/go-redis/v9" // Redis client
)

// RedisStore persists each collection as a JSON string under its key.
// Keys carry no TTL; this is durable state, not a cache.
type RedisStore struct {
	client *redis.Client // Underlying Redis client
}

// NewRedisStore wraps an existing Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get retrieves a value from Redis and unmarshals it into dest
func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := s.client.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// Set marshals value to JSON and stores it under key
func (s *RedisStore) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return s.client.Set(ctx, key, b, 0).Err() // Store without expiry
}

// Delete removes a key from Redis
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err() // Delete key from Redis
}
