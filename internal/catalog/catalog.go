package catalog

import (
	"context" // Context for storage operations
	"strings" // Case folding for search
	"time"    // Timestamps

	"hardware_store/internal/domain"  // Domain models
	"hardware_store/internal/storage" // Key-value storage abstraction
	"hardware_store/internal/utils"   // ID generation

	"github.com/sirupsen/logrus" // Logging library
)

// Storage keys
const (
	productsKey   = "sagar_hardware_products"   // Products collection
	categoriesKey = "sagar_hardware_categories" // Categories collection
)

// Store manages the product catalog and its category taxonomy
type Store struct {
	kv storage.Store // Injected key-value storage
}

// NewStore creates a catalog store over the given storage backend
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// ProductInput carries the caller-supplied fields of a new product
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Features    []string `json:"features,omitempty"`
	IsActive    bool     `json:"isActive"`
}

// ProductUpdate is a partial product patch; nil fields are left unchanged
type ProductUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Features    *[]string `json:"features,omitempty"`
	IsActive    *bool     `json:"isActive,omitempty"`
}

// StoredProducts returns every product; storage failures degrade to an
// empty list and are logged
func (s *Store) StoredProducts(ctx context.Context) []domain.Product {
	var products []domain.Product
	found, err := s.kv.Get(ctx, productsKey, &products)
	if err != nil {
		logrus.WithError(err).Error("Failed to read products from storage")
		return nil
	}
	if !found {
		return nil
	}
	return products
}

// storeProducts persists the products collection
func (s *Store) storeProducts(ctx context.Context, products []domain.Product) {
	if err := s.kv.Set(ctx, productsKey, products); err != nil {
		logrus.WithError(err).Error("Failed to store products")
	}
}

// StoredCategories returns the category taxonomy. The first-ever read seeds
// and persists the fixed default list; later reads return the stored value.
func (s *Store) StoredCategories(ctx context.Context) []domain.ProductCategory {
	var categories []domain.ProductCategory
	found, err := s.kv.Get(ctx, categoriesKey, &categories)
	if err != nil {
		logrus.WithError(err).Error("Failed to read categories from storage")
		return DefaultCategories()
	}
	if !found {
		// One-time lazy seed of the default taxonomy
		defaults := DefaultCategories()
		if err := s.kv.Set(ctx, categoriesKey, defaults); err != nil {
			logrus.WithError(err).Error("Failed to seed categories")
		}
		return defaults
	}
	return categories
}

// ActiveProducts returns the products visible in the catalog
func (s *Store) ActiveProducts(ctx context.Context) []domain.Product {
	var active []domain.Product
	for _, p := range s.StoredProducts(ctx) {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

// ProductsByCategory returns active products in one category
func (s *Store) ProductsByCategory(ctx context.Context, categoryID string) []domain.Product {
	var matched []domain.Product
	for _, p := range s.ActiveProducts(ctx) {
		if p.Category == categoryID {
			matched = append(matched, p)
		}
	}
	return matched
}

// Add creates a new product with a generated ID and timestamps
func (s *Store) Add(ctx context.Context, input ProductInput) (domain.Result, *domain.Product) {
	now := time.Now()
	product := domain.Product{
		ID:          utils.NewID("product"),
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Image:       input.Image,
		Icon:        input.Icon,
		Features:    input.Features,
		IsActive:    input.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	products := append(s.StoredProducts(ctx), product)
	s.storeProducts(ctx, products)
	return domain.OK("Product added successfully"), &product
}

// Update applies a partial patch to a product and stamps updatedAt
func (s *Store) Update(ctx context.Context, productID string, patch ProductUpdate) domain.Result {
	products := s.StoredProducts(ctx)
	idx := findProduct(products, productID)
	if idx == -1 {
		return domain.Fail("Product not found")
	}
	p := &products[idx]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Icon != nil {
		p.Icon = *patch.Icon
	}
	if patch.Features != nil {
		p.Features = *patch.Features
	}
	if patch.IsActive != nil {
		p.IsActive = *patch.IsActive
	}
	p.UpdatedAt = time.Now()
	s.storeProducts(ctx, products)
	return domain.OK("Product updated successfully")
}

// Delete removes a product by ID
func (s *Store) Delete(ctx context.Context, productID string) domain.Result {
	products := s.StoredProducts(ctx)
	idx := findProduct(products, productID)
	if idx == -1 {
		return domain.Fail("Product not found")
	}
	products = append(products[:idx], products[idx+1:]...)
	s.storeProducts(ctx, products)
	return domain.OK("Product deleted successfully")
}

// ToggleStatus flips a product's active flag and reports the new state
func (s *Store) ToggleStatus(ctx context.Context, productID string) domain.Result {
	products := s.StoredProducts(ctx)
	idx := findProduct(products, productID)
	if idx == -1 {
		return domain.Fail("Product not found")
	}
	products[idx].IsActive = !products[idx].IsActive
	products[idx].UpdatedAt = time.Now()
	s.storeProducts(ctx, products)
	state := "deactivated"
	if products[idx].IsActive {
		state = "activated"
	}
	return domain.OK("Product " + state + " successfully")
}

// ProductByID returns a product, or nil when absent
func (s *Store) ProductByID(ctx context.Context, productID string) *domain.Product {
	products := s.StoredProducts(ctx)
	idx := findProduct(products, productID)
	if idx == -1 {
		return nil
	}
	return &products[idx]
}

// CategoryByID returns a category, or nil when absent
func (s *Store) CategoryByID(ctx context.Context, categoryID string) *domain.ProductCategory {
	for _, c := range s.StoredCategories(ctx) {
		if c.ID == categoryID {
			return &c
		}
	}
	return nil
}

// Stats aggregates catalog counts, recomputed on every call
func (s *Store) Stats(ctx context.Context) domain.ProductStats {
	products := s.StoredProducts(ctx)
	categories := s.StoredCategories(ctx)
	active := 0
	for _, p := range products {
		if p.IsActive {
			active++
		}
	}
	stats := domain.ProductStats{
		TotalProducts:    len(products),
		ActiveProducts:   active,
		InactiveProducts: len(products) - active,
		TotalCategories:  len(categories),
		CategoryStats:    make([]domain.CategoryStat, 0, len(categories)),
	}
	for _, c := range categories {
		cs := domain.CategoryStat{CategoryID: c.ID, CategoryName: c.Name}
		for _, p := range products {
			if p.Category == c.ID {
				cs.TotalProducts++
				if p.IsActive {
					cs.ActiveProducts++
				}
			}
		}
		stats.CategoryStats = append(stats.CategoryStats, cs)
	}
	return stats
}

// Search matches active products case-insensitively against name,
// description, features and the resolved category name
func (s *Store) Search(ctx context.Context, query string) []domain.Product {
	products := s.ActiveProducts(ctx)
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return products
	}
	var matched []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			featuresMatch(p.Features, term) ||
			s.categoryNameMatches(ctx, p.Category, term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// featuresMatch reports whether any feature contains the folded term
func featuresMatch(features []string, term string) bool {
	for _, f := range features {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// categoryNameMatches resolves the category and folds its name
func (s *Store) categoryNameMatches(ctx context.Context, categoryID, term string) bool {
	category := s.CategoryByID(ctx, categoryID)
	return category != nil && strings.Contains(strings.ToLower(category.Name), term)
}

// findProduct returns the index of the product with the given ID
func findProduct(products []domain.Product, productID string) int {
	for i, p := range products {
		if p.ID == productID {
			return i
		}
	}
	return -1
}
