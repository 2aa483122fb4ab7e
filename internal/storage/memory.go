package storage

import (
	"context"       // Context for interface parity
	"encoding/json" // JSON encoding/decoding
	"sync"          // Mutex for concurrent access
)

// MemoryStore keeps collections in process memory. It backs tests and the
// dependency-free storage mode; contents are lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex      // Guards data
	data map[string][]byte // Serialized collections by key
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get reads the value under key into dest
func (s *MemoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.RLock()
	b, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil // Key does not exist
	}
	return true, json.Unmarshal(b, dest)
}

// Set marshals value and stores it under key
func (s *MemoryStore) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = b
	s.mu.Unlock()
	return nil
}

// Delete removes key from the store
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
