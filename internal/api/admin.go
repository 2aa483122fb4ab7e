package api

import (
	"net/http" // HTTP status codes

	"hardware_store/internal/auth"   // Auth store
	"hardware_store/internal/notify" // Toast feedback

	"github.com/sirupsen/logrus" // Logging library

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListUsersHandler returns all registered users without passwords
func ListUsersHandler(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users := store.AllUsers(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{
			"users": users,      // List of users
			"total": len(users), // Total number of users
		})
	}
}

// UpdateUserPasswordRequest carries the replacement password
type UpdateUserPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"` // New password must be provided
}

// UpdateUserPasswordHandler replaces a user's password
func UpdateUserPasswordHandler(store *auth.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserPasswordRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.UpdatePassword(c.Request.Context(), c.Param("username"), req.NewPassword)
		if !result.Success {
			notifier.Error(result.Message)
			status := http.StatusBadRequest
			if result.Message == "User not found" {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// UpdateUsernameRequest carries the replacement username
type UpdateUsernameRequest struct {
	NewUsername string `json:"new_username" binding:"required"` // New username must be provided
}

// UpdateUsernameHandler renames a user; the active session follows a rename
// of the logged-in user
func UpdateUsernameHandler(store *auth.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUsernameRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.UpdateUsername(c.Request.Context(), c.Param("username"), req.NewUsername)
		if !result.Success {
			notifier.Error(result.Message)
			status := http.StatusBadRequest
			if result.Message == "User not found" {
				status = http.StatusNotFound
			}
			c.JSON(status, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// DeleteUserHandler removes a user account. The account owning the active
// session cannot be deleted from the console.
func DeleteUserHandler(store *auth.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")
		// The console refuses to delete the logged-in account
		if current := store.CurrentUser(c.Request.Context()); current != nil && current.Username == username {
			notifier.Error("You cannot delete your own account")
			c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
			return
		}
		result := store.DeleteUser(c.Request.Context(), username)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusNotFound, gin.H{"error": result.Message})
			return
		}
		logrus.WithFields(logrus.Fields{
			"username": username, // Deleted account
		}).Info("User account deleted")
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}
