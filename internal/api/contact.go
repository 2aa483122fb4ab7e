package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Email shape validation
	"strconv"  // Submission ID formatting
	"strings"  // Input sanitization
	"time"     // Simulated send delay

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// contactEmailRegex validates the rough shape of an email address
var contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactRequest is the raw contact form payload
type ContactRequest struct {
	Name        string `json:"name"`        // Sender name
	Email       string `json:"email"`       // Sender email
	Phone       string `json:"phone"`       // Optional phone
	Subject     string `json:"subject"`     // Message subject
	Message     string `json:"message"`     // Message body
	ProjectType string `json:"projectType"` // Optional project type
	Urgency     string `json:"urgency"`     // Defaults to medium
}

// sanitize trims every field, folds the email and defaults the urgency
func (r *ContactRequest) sanitize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	r.ProjectType = strings.TrimSpace(r.ProjectType)
	r.Urgency = strings.TrimSpace(r.Urgency)
	if r.Urgency == "" {
		r.Urgency = "medium"
	}
}

// validate collects every validation error in the form
func (r *ContactRequest) validate() []string {
	var errs []string
	if r.Name == "" {
		errs = append(errs, "Name is required")
	}
	if r.Email == "" {
		errs = append(errs, "Email is required")
	}
	if r.Subject == "" {
		errs = append(errs, "Subject is required")
	}
	if r.Message == "" {
		errs = append(errs, "Message is required")
	}
	if r.Name != "" && len(r.Name) < 2 {
		errs = append(errs, "Name must be at least 2 characters")
	}
	if r.Subject != "" && len(r.Subject) < 5 {
		errs = append(errs, "Subject must be at least 5 characters")
	}
	if r.Message != "" && len(r.Message) < 10 {
		errs = append(errs, "Message must be at least 10 characters")
	}
	if r.Email != "" && !contactEmailRegex.MatchString(r.Email) {
		errs = append(errs, "Invalid email format")
	}
	return errs
}

// ContactHandler validates a contact submission and logs the composed email
// instead of dispatching one. A fixed delay simulates the send.
func ContactHandler(contactEmail string, sendDelay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ContactRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		req.sanitize()
		if errs := req.validate(); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": errs,
			})
			return
		}
		// Log the composed email; a real mailer would go here
		logrus.WithFields(logrus.Fields{
			"to":           contactEmail,
			"from":         req.Email,
			"name":         req.Name,
			"phone":        req.Phone,
			"project_type": req.ProjectType,
			"urgency":      req.Urgency,
			"subject":      "Contact Form: " + req.Subject,
		}).Info("Contact form submission")
		// Simulate the email sending delay
		time.Sleep(sendDelay)
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"message":      "Your message has been sent successfully! We'll get back to you within 24 hours.",
			"submissionId": "CONTACT_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		})
	}
}

// DemoHandler is the static ping endpoint
func DemoHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello from the hardware store API"})
	}
}
