package utils

import (
	"github.com/google/uuid" // UUID generation
)

// NewID generates a unique identifier, optionally namespaced with a prefix
// (e.g. "product", "cart_item") so stored IDs stay self-describing.
func NewID(prefix string) string {
	id := uuid.NewString()
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
