package api

import (
	"net/http" // HTTP status codes

	"hardware_store/internal/domain"       // Domain models
	"hardware_store/internal/notify"       // Toast feedback
	"hardware_store/internal/registration" // Registration store

	"github.com/gin-gonic/gin" // Gin web framework
)

// RegisterCustomerSupplierHandler creates a new customer or supplier
// registration with status pending
func RegisterCustomerSupplierHandler(store *registration.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registration.Input // Bind JSON request to struct
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result, id := store.Register(c.Request.Context(), input)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusCreated, gin.H{"message": result.Message, "id": id})
	}
}

// SearchRegistrationsHandler searches one partition or the union of both
func SearchRegistrationsHandler(store *registration.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		recordType := c.Query("type")
		if recordType != "" && recordType != domain.TypeCustomer && recordType != domain.TypeSupplier {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be customer or supplier"})
			return
		}
		records := store.Search(c.Request.Context(), c.Query("q"), recordType)
		c.JSON(http.StatusOK, gin.H{"registrations": records, "total": len(records)})
	}
}

// ListRegistrationsHandler returns every registration (admin)
func ListRegistrationsHandler(store *registration.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		records := store.AllRegistrations(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"registrations": records, "total": len(records)})
	}
}

// GetRegistrationHandler returns one registration by ID (admin)
func GetRegistrationHandler(store *registration.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		record := store.ByID(c.Request.Context(), c.Param("id"))
		if record == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"registration": record})
	}
}

// UpdateRegistrationHandler applies a partial registration patch (admin)
func UpdateRegistrationHandler(store *registration.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch registration.Update // Bind JSON request to struct
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.UpdateRegistration(c.Request.Context(), c.Param("id"), patch)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(statusForFailure(result), gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// UpdateRegistrationStatusRequest carries the new status
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status" binding:"required"` // active or pending
}

// UpdateRegistrationStatusHandler sets a registration's status (admin)
func UpdateRegistrationStatusHandler(store *registration.Store, notifier *notify.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRegistrationStatusRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		result := store.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if !result.Success {
			notifier.Error(result.Message)
			c.JSON(statusForFailure(result), gin.H{"error": result.Message})
			return
		}
		notifier.Success(result.Message)
		c.JSON(http.StatusOK, gin.H{"message": result.Message})
	}
}

// DeleteRegistrationHandler removes a registration (admin)
func DeleteRegistrationHandler(store *registration.Store, notifier *notify.Notifier) gin.HandlerFunc {
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

// RegistrationStatsHandler returns the aggregated registration counts (admin)
func RegistrationStatsHandler(store *registration.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"stats": store.Stats(c.Request.Context())})
	}
}

// statusForFailure maps a failed result to its HTTP status
func statusForFailure(result domain.Result) int {
	if result.Message == "Record not found" {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
