package cart

import (
	"context" // Context for storage operations
	"time"    // Timestamps

	"hardware_store/internal/domain"  // Domain models
	"hardware_store/internal/storage" // Key-value storage abstraction
	"hardware_store/internal/utils"   // ID generation

	"github.com/sirupsen/logrus" // Logging library
)

// cartKey is the single collection key for the per-profile cart
const cartKey = "sagar_hardware_cart"

// Store manages the shopping cart. Totals are never adjusted by delta:
// every mutation recomputes them from the full item list.
type Store struct {
	kv storage.Store // Injected key-value storage
}

// NewStore creates a cart store over the given storage backend
func NewStore(kv storage.Store) *Store {
	return &Store{kv: kv}
}

// emptyCart returns the zeroed cart shape used when nothing is stored
func emptyCart() domain.Cart {
	return domain.Cart{
		Items:       []domain.CartItem{},
		TotalItems:  0,
		TotalAmount: 0,
		UpdatedAt:   time.Now(),
	}
}

// Cart returns the persisted cart, or an empty zeroed cart when none exists.
// It never fails; storage errors are logged and degrade to the empty cart.
func (s *Store) Cart(ctx context.Context) domain.Cart {
	var cart domain.Cart
	found, err := s.kv.Get(ctx, cartKey, &cart)
	if err != nil {
		logrus.WithError(err).Error("Failed to read cart from storage")
		return emptyCart()
	}
	if !found {
		return emptyCart()
	}
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}
	return cart
}

// save stamps the cart and persists it
func (s *Store) save(ctx context.Context, cart *domain.Cart) {
	cart.UpdatedAt = time.Now()
	if err := s.kv.Set(ctx, cartKey, cart); err != nil {
		logrus.WithError(err).Error("Failed to save cart")
	}
}

// recalculate recomputes both totals by full reduction over the items
func recalculate(cart *domain.Cart) {
	totalItems := 0
	totalAmount := 0.0
	for _, item := range cart.Items {
		totalItems += item.Quantity
		totalAmount += item.Price * float64(item.Quantity)
	}
	cart.TotalItems = totalItems
	cart.TotalAmount = totalAmount
}

// Add puts a product into the cart. An existing line for the same product
// has its quantity incremented; otherwise a new line item is created.
func (s *Store) Add(ctx context.Context, product domain.CartProduct, quantity int) (domain.Result, domain.Cart) {
	if quantity < 1 {
		quantity = 1 // Single unit when the caller omits a quantity
	}
	cart := s.Cart(ctx)
	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:          utils.NewID("cart_item"),
			ProductID:   product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Image:       product.Image,
			Category:    product.Category,
			Quantity:    quantity,
			AddedAt:     time.Now(),
		})
	}
	recalculate(&cart)
	s.save(ctx, &cart)
	return domain.OK(product.Name + " added to cart"), cart
}

// Remove deletes a line item by its ID
func (s *Store) Remove(ctx context.Context, cartItemID string) (domain.Result, domain.Cart) {
	cart := s.Cart(ctx)
	idx := -1
	for i, item := range cart.Items {
		if item.ID == cartItemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Fail("Item not found in cart"), cart
	}
	removed := cart.Items[idx]
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	recalculate(&cart)
	s.save(ctx, &cart)
	return domain.OK(removed.Name + " removed from cart"), cart
}

// UpdateQuantity sets a line item's quantity. A quantity below one removes
// the line instead.
func (s *Store) UpdateQuantity(ctx context.Context, cartItemID string, quantity int) (domain.Result, domain.Cart) {
	if quantity < 1 {
		return s.Remove(ctx, cartItemID)
	}
	cart := s.Cart(ctx)
	idx := -1
	for i, item := range cart.Items {
		if item.ID == cartItemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Fail("Item not found in cart"), cart
	}
	cart.Items[idx].Quantity = quantity
	recalculate(&cart)
	s.save(ctx, &cart)
	return domain.OK("Cart updated"), cart
}

// Clear replaces the cart with the zeroed structure
func (s *Store) Clear(ctx context.Context) (domain.Result, domain.Cart) {
	cart := emptyCart()
	s.save(ctx, &cart)
	return domain.OK("Cart cleared"), cart
}

// ItemCount returns the total number of items in the cart
func (s *Store) ItemCount(ctx context.Context) int {
	return s.Cart(ctx).TotalItems
}

// Total returns the cart's total amount
func (s *Store) Total(ctx context.Context) float64 {
	return s.Cart(ctx).TotalAmount
}

// IsProductInCart reports whether any line item refers to the product
func (s *Store) IsProductInCart(ctx context.Context, productID string) bool {
	for _, item := range s.Cart(ctx).Items {
		if item.ProductID == productID {
			return true
		}
	}
	return false
}

// ItemByProductID returns the line item for a product, or nil when absent
func (s *Store) ItemByProductID(ctx context.Context, productID string) *domain.CartItem {
	for _, item := range s.Cart(ctx).Items {
		if item.ProductID == productID {
			return &item
		}
	}
	return nil
}

// Summary returns the derived cart summary
func (s *Store) Summary(ctx context.Context) domain.CartSummary {
	cart := s.Cart(ctx)
	return domain.CartSummary{
		ItemCount:   cart.TotalItems,
		TotalAmount: cart.TotalAmount,
		IsEmpty:     len(cart.Items) == 0,
	}
}

// Export takes a cart snapshot for checkout or backup
func (s *Store) Export(ctx context.Context) domain.CartExport {
	cart := s.Cart(ctx)
	export := domain.CartExport{Items: cart.Items}
	export.Summary.TotalItems = cart.TotalItems
	export.Summary.TotalAmount = cart.TotalAmount
	export.Summary.ExportDate = time.Now()
	return export
}
