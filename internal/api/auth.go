package api

import (
	"net/http" // HTTP status codes

	"hardware_store/internal/auth"   // Auth store
	"hardware_store/internal/domain" // Domain models
	"hardware_store/internal/notify" // Toast feedback
	"hardware_store/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request and Response structs
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// RegisterHandler creates a new user account
func RegisterHandler(store *auth.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.Register(c.Request.Context(), req.Username, req.Password)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		// Return success response
		c.JSON(http.StatusCreated, gin.H{"message": result.Message})
	}
}

// LoginHandler authenticates a user, stores the session and returns a JWT
func LoginHandler(store *auth.Store, jwtSecret string, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.Authenticate(c.Request.Context(), req.Username, req.Password)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusUnauthorized, gin.H{"error": result.Message})
			return
		}
		// Record the active session for this profile
		store.SetCurrentUser(c.Request.Context(), domain.SessionUser{Username: req.Username})
		// Generate JWT token
		token, err := utils.GenerateJWT(req.Username, false, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		notifier.Success(result.Message)
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// AdminLoginHandler checks the configured admin credential pair, opens the
// 24-hour admin session and returns an admin-flagged JWT
func AdminLoginHandler(store *auth.Store, jwtSecret string, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.AuthenticateAdmin(req.Username, req.Password)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusUnauthorized, gin.H{"error": result.Message})
			return
		}
		store.SetAdminSession(c.Request.Context()) // Stamp the 24-hour admin session
		token, err := utils.GenerateJWT(req.Username, true, jwtSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// LogoutHandler clears both the user and admin sessions
func LogoutHandler(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		store.LogoutAll(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// MeHandler reports the active session, if any
func MeHandler(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := store.CurrentUser(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"loggedIn": user != nil, // Whether a session exists
			"user":     user,        // The session user, or null
		})
	}
}
