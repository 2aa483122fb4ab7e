package api

import (
	"net/http" // HTTP status codes

	"hardware_store/internal/cart"   // Cart store
	"hardware_store/internal/domain" // Domain models
	"hardware_store/internal/notify" // Toast feedback

	"github.com/gin-gonic/gin" // Gin web framework
)

// AddCartItemRequest carries the product to add and an optional quantity
type AddCartItemRequest struct {
	Product  domain.CartProduct `json:"product" binding:"required"` // Product being added
	Quantity int                `json:"quantity"`                   // Defaults to 1 when omitted
}

// UpdateCartItemRequest carries the new quantity for a line item
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"` // Zero or below removes the line
}

// GetCartHandler returns the persisted cart (or the empty zeroed cart)
func GetCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cart": store.Cart(c.Request.Context())})
	}
}

// GetCartSummaryHandler returns the derived cart summary
func GetCartSummaryHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"summary": store.Summary(c.Request.Context())})
	}
}

// ExportCartHandler returns a cart snapshot for checkout or backup
func ExportCartHandler(store *cart.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Export(c.Request.Context()))
	}
}

// AddCartItemHandler adds a product to the cart, merging lines by product ID
func AddCartItemHandler(store *cart.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddCartItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil || req.Product.ID == "" || req.Product.Name == "" {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, updated := store.Add(c.Request.Context(), req.Product, req.Quantity)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message, "cart": updated})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message, "cart": updated})
	}
}

// UpdateCartItemHandler sets a line item's quantity; zero removes it
func UpdateCartItemHandler(store *cart.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateCartItemRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, updated := store.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusNotFound, gin.H{"error": result.Message, "cart": updated})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message, "cart": updated})
	}
}

// RemoveCartItemHandler deletes a line item
func RemoveCartItemHandler(store *cart.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, updated := store.Remove(c.Request.Context(), c.Param("id"))
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusNotFound, gin.H{"error": result.Message, "cart": updated})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message, "cart": updated})
	}
}

// ClearCartHandler replaces the cart with the zeroed structure
func ClearCartHandler(store *cart.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, updated := store.Clear(c.Request.Context())
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message, "cart": updated})
	}
}
