package domain

import "time"

// Product Model
type Product struct {
	ID          string    `json:"id"`                 // Unique product ID
	Name        string    `json:"name"`               // Product name
	Description string    `json:"description"`        // Product description
	Category    string    `json:"category"`           // Category ID this product belongs to
	Price       float64   `json:"price,omitempty"`    // Unit price, optional for services
	Image       string    `json:"image,omitempty"`    // Optional image
	Icon        string    `json:"icon,omitempty"`     // Optional icon
	Features    []string  `json:"features,omitempty"` // Optional feature list
	IsActive    bool      `json:"isActive"`           // Whether the product is visible in the catalog
	CreatedAt   time.Time `json:"createdAt"`          // Creation time
	UpdatedAt   time.Time `json:"updatedAt"`          // Last update time
}

// ColorScheme carries the presentation classes attached to a category
type ColorScheme struct {
	Bg          string `json:"bg"`          // Card background
	IconBg      string `json:"iconBg"`      // Icon background
	IconColor   string `json:"iconColor"`   // Icon color
	CheckColor  string `json:"checkColor"`  // Checkmark color
	BorderColor string `json:"borderColor"` // Border color
	ShadowColor string `json:"shadowColor"` // Hover shadow color
}

// ProductCategory is one entry of the fixed category taxonomy
type ProductCategory struct {
	ID          string      `json:"id"`          // Category ID
	Name        string      `json:"name"`        // Display name
	Description string      `json:"description"` // Display description
	Icon        string      `json:"icon"`        // SVG path for the category icon
	ColorScheme ColorScheme `json:"colorScheme"` // Presentation colors
}

// CategoryStat is the per-category slice of the product statistics
type CategoryStat struct {
	CategoryID     string `json:"categoryId"`     // Category ID
	CategoryName   string `json:"categoryName"`   // Category name
	TotalProducts  int    `json:"totalProducts"`  // Products in the category
	ActiveProducts int    `json:"activeProducts"` // Active products in the category
}

// ProductStats aggregates catalog counts; recomputed on every call
type ProductStats struct {
	TotalProducts    int            `json:"totalProducts"`    // All products
	ActiveProducts   int            `json:"activeProducts"`   // Active products
	InactiveProducts int            `json:"inactiveProducts"` // Inactive products
	TotalCategories  int            `json:"totalCategories"`  // Category count
	CategoryStats    []CategoryStat `json:"categoryStats"`    // Per-category breakdown
}
