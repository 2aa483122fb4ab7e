package catalog

import (
	"context"
	"testing"

	"hardware_store/internal/domain"
	"hardware_store/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore builds a catalog store over a fresh in-memory backend
func newTestStore() (*Store, context.Context) {
	return NewStore(storage.NewMemoryStore()), context.Background()
}

func TestCategoriesAreSeededExactlyOnce(t *testing.T) {
	s, ctx := newTestStore()

	first := s.StoredCategories(ctx)
	require.Len(t, first, 6)
	assert.Equal(t, "hardware-tools", first[0].ID)
	assert.Equal(t, "Hardware Tools & Equipment", first[0].Name)

	// Overwrite the stored list; a second read must return the stored value,
	// proving the seed runs only on the first-ever read
	trimmed := first[:2]
	require.NoError(t, s.kv.Set(ctx, categoriesKey, trimmed))
	second := s.StoredCategories(ctx)
	assert.Len(t, second, 2)
}

func TestAddAndFetchProduct(t *testing.T) {
	s, ctx := newTestStore()

	result, product := s.Add(ctx, ProductInput{
		Name:        "Hammer Set",
		Description: "Durable steel hammers",
		Category:    "hardware-tools",
		Price:       850,
		Features:    []string{"Steel Construction"},
		IsActive:    true,
	})
	require.True(t, result.Success)
	require.NotNil(t, product)
	assert.NotEmpty(t, product.ID)
	assert.False(t, product.CreatedAt.IsZero())

	fetched := s.ProductByID(ctx, product.ID)
	require.NotNil(t, fetched)
	assert.Equal(t, "Hammer Set", fetched.Name)
	assert.Nil(t, s.ProductByID(ctx, "missing"))
}

func TestUpdateProductStampsUpdatedAt(t *testing.T) {
	s, ctx := newTestStore()

	_, product := s.Add(ctx, ProductInput{Name: "Hammer", Category: "hardware-tools", IsActive: true})
	created := product.UpdatedAt

	name := "Claw Hammer"
	price := 900.0
	result := s.Update(ctx, product.ID, ProductUpdate{Name: &name, Price: &price})
	require.True(t, result.Success)

	updated := s.ProductByID(ctx, product.ID)
	require.NotNil(t, updated)
	assert.Equal(t, "Claw Hammer", updated.Name)
	assert.Equal(t, 900.0, updated.Price)
	assert.False(t, updated.UpdatedAt.Before(created))

	assert.Equal(t, "Product not found", s.Update(ctx, "missing", ProductUpdate{Name: &name}).Message)
}

func TestDeleteProduct(t *testing.T) {
	s, ctx := newTestStore()

	_, product := s.Add(ctx, ProductInput{Name: "Hammer", Category: "hardware-tools", IsActive: true})
	require.True(t, s.Delete(ctx, product.ID).Success)
	assert.Nil(t, s.ProductByID(ctx, product.ID))
	assert.Equal(t, "Product not found", s.Delete(ctx, product.ID).Message)
}

func TestToggleStatusReportsResultingState(t *testing.T) {
	s, ctx := newTestStore()

	_, product := s.Add(ctx, ProductInput{Name: "Hammer", Category: "hardware-tools", IsActive: true})

	result := s.ToggleStatus(ctx, product.ID)
	require.True(t, result.Success)
	assert.Equal(t, "Product deactivated successfully", result.Message)

	result = s.ToggleStatus(ctx, product.ID)
	assert.Equal(t, "Product activated successfully", result.Message)

	assert.Equal(t, "Product not found", s.ToggleStatus(ctx, "missing").Message)
}

func TestActiveProductFilters(t *testing.T) {
	s, ctx := newTestStore()

	s.Add(ctx, ProductInput{Name: "Hammer", Category: "hardware-tools", IsActive: true})
	s.Add(ctx, ProductInput{Name: "Old Drill", Category: "hardware-tools", IsActive: false})
	s.Add(ctx, ProductInput{Name: "PVC Pipes", Category: "plumbing-sanitation", IsActive: true})

	assert.Len(t, s.ActiveProducts(ctx), 2)
	byCategory := s.ProductsByCategory(ctx, "hardware-tools")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Hammer", byCategory[0].Name)
}

func TestSearchMatchesAllFields(t *testing.T) {
	s, ctx := newTestStore()

	s.Add(ctx, ProductInput{
		Name:        "Professional Drill Set",
		Description: "Cordless drill with multiple bits",
		Category:    "hardware-tools",
		Features:    []string{"LED Light", "Variable Speed"},
		IsActive:    true,
	})
	s.Add(ctx, ProductInput{
		Name:        "Interior Wall Paint",
		Description: "Premium quality paint",
		Category:    "paint-finishing",
		IsActive:    true,
	})
	s.Add(ctx, ProductInput{Name: "Hidden", Category: "hardware-tools", IsActive: false})

	// Name match, case-insensitive
	assert.Len(t, s.Search(ctx, "DRILL"), 1)
	// Description match
	assert.Len(t, s.Search(ctx, "cordless"), 1)
	// Feature match
	assert.Len(t, s.Search(ctx, "led light"), 1)
	// Resolved category name match ("Hardware Tools & Equipment")
	assert.Len(t, s.Search(ctx, "equipment"), 1)
	// Inactive products never match
	assert.Empty(t, s.Search(ctx, "hidden"))
	// Blank query returns all active products
	assert.Len(t, s.Search(ctx, "  "), 2)
}

func TestStatsBreakdown(t *testing.T) {
	s, ctx := newTestStore()

	s.Add(ctx, ProductInput{Name: "Hammer", Category: "hardware-tools", IsActive: true})
	s.Add(ctx, ProductInput{Name: "Old Drill", Category: "hardware-tools", IsActive: false})
	s.Add(ctx, ProductInput{Name: "PVC Pipes", Category: "plumbing-sanitation", IsActive: true})

	stats := s.Stats(ctx)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.ActiveProducts)
	assert.Equal(t, 1, stats.InactiveProducts)
	assert.Equal(t, 6, stats.TotalCategories)
	require.Len(t, stats.CategoryStats, 6)

	byID := map[string]domain.CategoryStat{}
	for _, cs := range stats.CategoryStats {
		byID[cs.CategoryID] = cs
	}
	assert.Equal(t, 2, byID["hardware-tools"].TotalProducts)
	assert.Equal(t, 1, byID["hardware-tools"].ActiveProducts)
	assert.Equal(t, 1, byID["plumbing-sanitation"].TotalProducts)
	assert.Zero(t, byID["paint-finishing"].TotalProducts)
}

func TestSeedSampleProductsIsIdempotent(t *testing.T) {
	s, ctx := newTestStore()

	result, added := s.SeedSampleProducts(ctx)
	require.True(t, result.Success)
	assert.Equal(t, 18, added)
	assert.Len(t, s.StoredProducts(ctx), 18)

	// A populated catalog is left untouched
	result, added = s.SeedSampleProducts(ctx)
	require.True(t, result.Success)
	assert.Zero(t, added)
	assert.Len(t, s.StoredProducts(ctx), 18)
}
