package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// postContact sends a contact submission through a throwaway router
func postContact(t *testing.T, payload any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/contact", ContactHandler("info@example.com", 0))

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validContact() ContactRequest {
	return ContactRequest{
		Name:    "Ravi Kumar",
		Email:   "  Ravi@Example.COM ",
		Subject: "Bulk order enquiry",
		Message: "Looking for a quote on 50 drill sets.",
	}
}

func TestContactHandlerAcceptsValidSubmission(t *testing.T) {
	rec := postContact(t, validContact())
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success      bool   `json:"success"`
		Message      string `json:"message"`
		SubmissionID string `json:"submissionId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Your message has been sent successfully! We'll get back to you within 24 hours.", resp.Message)
	assert.True(t, strings.HasPrefix(resp.SubmissionID, "CONTACT_"))
}

func TestContactHandlerCollectsAllValidationErrors(t *testing.T) {
	rec := postContact(t, ContactRequest{
		Name:    "R",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Too short",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Contains(t, resp.Details, "Name must be at least 2 characters")
	assert.Contains(t, resp.Details, "Subject must be at least 5 characters")
	assert.Contains(t, resp.Details, "Message must be at least 10 characters")
	assert.Contains(t, resp.Details, "Invalid email format")
}

func TestContactHandlerRequiresCoreFields(t *testing.T) {
	rec := postContact(t, ContactRequest{})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Details []string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t, []string{
		"Name is required",
		"Email is required",
		"Subject is required",
		"Message is required",
	}, resp.Details)
}

func TestContactRequestSanitize(t *testing.T) {
	req := validContact()
	req.Urgency = ""
	req.sanitize()

	assert.Equal(t, "ravi@example.com", req.Email)
	assert.Equal(t, "medium", req.Urgency)
	assert.Empty(t, req.validate())
}

func TestDemoHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/demo", DemoHandler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/demo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message": "Hello from the hardware store API"}`, rec.Body.String())
}
