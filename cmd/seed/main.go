package main

import (
	"context" // Context for storage operations

	"hardware_store/internal/catalog" // Seed data and catalog store
	"hardware_store/internal/config"  // Custom import path (Config)
	"hardware_store/internal/storage" // Key-value storage backends

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for seeding. Opens the configured backend (creating the
// MySQL kv table when that backend is selected), seeds the default category
// taxonomy and loads the sample catalog if no products exist yet.
func main() {
	cfg := config.LoadConfig() // Load configuration

	kv, err := storage.Open(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("failed to open storage: %v", err) // Fatal error if storage setup fails
	}

	ctx := context.Background()
	store := catalog.NewStore(kv)

	// First read seeds and persists the default categories when absent
	categories := store.StoredCategories(ctx)
	logrus.WithField("categories", len(categories)).Info("Category taxonomy ready")

	result, added := store.SeedSampleProducts(ctx)
	logrus.WithField("products_added", added).Info(result.Message)
}
