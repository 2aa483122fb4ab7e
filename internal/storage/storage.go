package storage

import "context"

// Store is the key-value collaborator every data store writes through.
// Each collection is one JSON-serialized blob under a fixed key, so a
// mutation always reads the whole collection and writes it back.
type Store interface {
	// Get reads the value under key into dest. It reports whether the key
	// existed; a missing key is not an error.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set serializes value and writes it under key.
	Set(ctx context.Context, key string, value any) error
	// Delete removes key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
