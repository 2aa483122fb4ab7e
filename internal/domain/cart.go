package domain

import "time"

// CartItem is one line item in the cart
type CartItem struct {
	ID          string    `json:"id"`              // Unique line item ID
	ProductID   string    `json:"productId"`       // Product this line refers to
	Name        string    `json:"name"`            // Product name snapshot
	Description string    `json:"description"`     // Product description snapshot
	Price       float64   `json:"price"`           // Unit price
	Image       string    `json:"image,omitempty"` // Optional product image
	Category    string    `json:"category"`        // Category ID snapshot
	Quantity    int       `json:"quantity"`        // Quantity, always >= 1
	AddedAt     time.Time `json:"addedAt"`         // When the line was created
}

// Cart is the per-profile shopping cart; totals are always recomputed from
// the items, never adjusted by delta
type Cart struct {
	Items       []CartItem `json:"items"`       // Line items
	TotalItems  int        `json:"totalItems"`  // Sum of all quantities
	TotalAmount float64    `json:"totalAmount"` // Sum of price * quantity
	UpdatedAt   time.Time  `json:"updatedAt"`   // Last mutation time
}

// CartProduct is the product information needed to add a line item
type CartProduct struct {
	ID          string  `json:"id"`              // Product ID
	Name        string  `json:"name"`            // Product name
	Description string  `json:"description"`     // Product description
	Price       float64 `json:"price"`           // Unit price
	Image       string  `json:"image,omitempty"` // Optional image
	Category    string  `json:"category"`        // Category ID
}

// CartSummary is a derived view of the cart
type CartSummary struct {
	ItemCount   int     `json:"itemCount"`   // Total items across all lines
	TotalAmount float64 `json:"totalAmount"` // Total amount
	IsEmpty     bool    `json:"isEmpty"`     // Whether the cart has no lines
}

// CartExport is a cart snapshot for checkout or backup
type CartExport struct {
	Items   []CartItem `json:"items"` // Line items at export time
	Summary struct {
		TotalItems  int       `json:"totalItems"`  // Total items
		TotalAmount float64   `json:"totalAmount"` // Total amount
		ExportDate  time.Time `json:"exportDate"`  // When the export was taken
	} `json:"summary"`
}
