package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ridelite/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotAuthenticated):
		return http.StatusUnauthorized

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrMissingLocation),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrMalformedAmount):
		return http.StatusBadRequest

	// Conflict errors - operation not valid in current state
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrNoActiveMatch),
		errors.Is(err, service.ErrNoSearchToRetry),
		errors.Is(err, service.ErrNoPaymentMethod):
		return http.StatusConflict

	// Missing records
	case errors.Is(err, service.ErrNoUpcomingRide),
		errors.Is(err, service.ErrNoPendingPayment):
		return http.StatusNotFound

	// Payment rejected
	case errors.Is(err, service.ErrInsufficientFunds):
		return http.StatusPaymentRequired

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
