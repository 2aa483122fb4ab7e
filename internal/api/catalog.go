package api

import (
	"net/http" // HTTP status codes

	"hardware_store/internal/catalog" // Catalog store
	"hardware_store/internal/notify"  // Toast feedback

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListProductsHandler returns active products, optionally filtered by
// category or a search query
func ListProductsHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if categoryID := c.Query("category"); categoryID != "" {
			products := store.ProductsByCategory(ctx, categoryID)
			c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
			return
		}
		if query := c.Query("q"); query != "" {
			products := store.Search(ctx, query)
			c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
			return
		}
		products := store.ActiveProducts(ctx)
		c.JSON(http.StatusOK, gin.H{"products": products, "total": len(products)})
	}
}

// GetProductHandler returns one product by ID
func GetProductHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product := store.ProductByID(c.Request.Context(), c.Param("id"))
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}

// ListCategoriesHandler returns the category taxonomy, seeding it on the
// first-ever read
func ListCategoriesHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := store.StoredCategories(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"categories": categories, "total": len(categories)})
	}
}

// AddProductHandler creates a new product (admin)
func AddProductHandler(store *catalog.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input catalog.ProductInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&input); err != nil || input.Name == "" || input.Category == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, product := store.Add(c.Request.Context(), input)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusCreated, gin.H{"message": result.Message, "product": product})
	}
}

// UpdateProductHandler applies a partial product patch (admin)
func UpdateProductHandler(store *catalog.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch catalog.ProductUpdate // Bind JSON request to struct
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.Update(c.Request.Context(), c.Param("id"), patch)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusNotFound, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// DeleteProductHandler removes a product (admin)
func DeleteProductHandler(store *catalog.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := store.Delete(c.Request.Context(), c.Param("id"))
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusNotFound, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// ToggleProductHandler flips a product's active flag (admin)
func ToggleProductHandler(store *catalog.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := store.ToggleStatus(c.Request.Context(), c.Param("id"))
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusNotFound, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// ProductStatsHandler returns the aggregated catalog statistics (admin)
func ProductStatsHandler(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"stats": store.Stats(c.Request.Context())})
	}
}
