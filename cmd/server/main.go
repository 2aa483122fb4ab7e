package main

import (
	"context" // Context for storage setup
	"log"     // log package is needed for logging
	"time"    // Contact form delay

	"hardware_store/internal/api"          // Custom package for API handlers
	"hardware_store/internal/auth"         // Auth store
	"hardware_store/internal/cart"         // Cart store
	"hardware_store/internal/catalog"      // Product/category store
	"hardware_store/internal/config"       // Custom package for configuration
	"hardware_store/internal/middleware"   // Custom package for middleware
	"hardware_store/internal/notify"       // Toast-style feedback
	"hardware_store/internal/registration" // Customer/supplier store
	"hardware_store/internal/storage"      // Key-value storage backends

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup the key-value storage backend (redis, mysql or memory)
	kv, err := storage.Open(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("failed to open storage: %v", err) // Fatal error if storage setup fails
	}

	// Build the stores over the shared storage backend
	authStore := auth.NewStore(kv, cfg.AdminUsername, cfg.AdminPassword)
	cartStore := cart.NewStore(kv)
	catalogStore := catalog.NewStore(kv)
	registrationStore := registration.NewStore(kv)
	notifier := notify.New(logrus.StandardLogger())

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(authStore, notifier))              // Registration endpoint
	r.POST("/auth/login", api.LoginHandler(authStore, cfg.JWTSecret, notifier))     // Login endpoint
	r.POST("/auth/logout", api.LogoutHandler(authStore))                            // Logout endpoint
	r.GET("/auth/me", api.MeHandler(authStore))                                     // Session endpoint
	r.POST("/admin/login", api.AdminLoginHandler(authStore, cfg.JWTSecret, notifier)) // Admin login endpoint

	// Catalog routes (public storefront)
	r.GET("/products", api.ListProductsHandler(catalogStore))   // Active products, ?category= or ?q=
	r.GET("/products/:id", api.GetProductHandler(catalogStore)) // Single product
	r.GET("/categories", api.ListCategoriesHandler(catalogStore)) // Category taxonomy

	// Cart routes (one cart per browser profile)
	r.GET("/cart", api.GetCartHandler(cartStore))                            // Current cart
	r.GET("/cart/summary", api.GetCartSummaryHandler(cartStore))             // Derived summary
	r.GET("/cart/export", api.ExportCartHandler(cartStore))                  // Checkout/backup snapshot
	r.POST("/cart/items", api.AddCartItemHandler(cartStore, notifier))       // Add product
	r.PUT("/cart/items/:id", api.UpdateCartItemHandler(cartStore, notifier)) // Change quantity
	r.DELETE("/cart/items/:id", api.RemoveCartItemHandler(cartStore, notifier)) // Remove line
	r.DELETE("/cart", api.ClearCartHandler(cartStore, notifier))             // Clear cart

	// Registration routes
	r.POST("/registrations", api.RegisterCustomerSupplierHandler(registrationStore, notifier)) // Customer/supplier signup
	r.GET("/registrations/search", api.SearchRegistrationsHandler(registrationStore))          // Search endpoint

	// Contact form and demo endpoints
	r.POST("/api/contact", api.ContactHandler(cfg.ContactEmail, time.Duration(cfg.ContactDelayMS)*time.Millisecond))
	r.GET("/api/demo", api.DemoHandler())

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	// Protect admin routes with JWT and AdminOnly middleware
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(authStore))
	adminGroup.GET("/users", api.ListUsersHandler(authStore))                                      // List users endpoint
	adminGroup.PUT("/users/:username", api.UpdateUsernameHandler(authStore, notifier))             // Rename user
	adminGroup.PUT("/users/:username/password", api.UpdateUserPasswordHandler(authStore, notifier)) // Change password
	adminGroup.DELETE("/users/:username", api.DeleteUserHandler(authStore, notifier))              // Delete user
	adminGroup.POST("/products", api.AddProductHandler(catalogStore, notifier))                    // Create product
	adminGroup.PUT("/products/:id", api.UpdateProductHandler(catalogStore, notifier))              // Update product
	adminGroup.DELETE("/products/:id", api.DeleteProductHandler(catalogStore, notifier))           // Delete product
	adminGroup.POST("/products/:id/toggle", api.ToggleProductHandler(catalogStore, notifier))      // Toggle active flag
	adminGroup.GET("/products/stats", api.ProductStatsHandler(catalogStore))                       // Catalog statistics
	adminGroup.GET("/registrations", api.ListRegistrationsHandler(registrationStore))              // List registrations
	adminGroup.GET("/registrations/stats", api.RegistrationStatsHandler(registrationStore))        // Registration statistics
	adminGroup.GET("/registrations/:id", api.GetRegistrationHandler(registrationStore))            // Single registration
	adminGroup.PUT("/registrations/:id", api.UpdateRegistrationHandler(registrationStore, notifier)) // Update registration
	adminGroup.PUT("/registrations/:id/status", api.UpdateRegistrationStatusHandler(registrationStore, notifier)) // Set status
	adminGroup.DELETE("/registrations/:id", api.DeleteRegistrationHandler(registrationStore, notifier)) // Delete registration

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
