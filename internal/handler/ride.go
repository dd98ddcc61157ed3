package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridelite/internal/domain"
	"ridelite/internal/service"
)

// RideHandler handles HTTP requests for ride matching and the upcoming ride.
type RideHandler struct {
	matching *service.MatchingService
}

// NewRideHandler creates a new RideHandler.
func NewRideHandler(matching *service.MatchingService) *RideHandler {
	return &RideHandler{matching: matching}
}

// RequestRideRequest is the HTTP request body for requesting a ride.
type RequestRideRequest struct {
	Pickup      string `json:"pickup"`
	Destination string `json:"destination"`
	RideType    string `json:"ride_type,omitempty"`
	Distance    string `json:"distance,omitempty"`
	Duration    string `json:"duration,omitempty"`
}

// RequestRide handles POST /v1/rides
func (h *RideHandler) RequestRide(c *gin.Context) {
	var req RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	status, err := h.matching.RequestRide(c.Request.Context(), service.RideRequest{
		Pickup:      req.Pickup,
		Destination: req.Destination,
		RideTypeID:  req.RideType,
		Distance:    req.Distance,
		Duration:    req.Duration,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, status)
}

// Status handles GET /v1/rides/status
func (h *RideHandler) Status(c *gin.Context) {
	respondJSON(c, http.StatusOK, h.matching.Status())
}

// Confirm handles POST /v1/rides/confirm
func (h *RideHandler) Confirm(c *gin.Context) {
	ride, err := h.matching.Confirm(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, ride)
}

// Cancel handles POST /v1/rides/cancel
func (h *RideHandler) Cancel(c *gin.Context) {
	if err := h.matching.Cancel(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, h.matching.Status())
}

// Retry handles POST /v1/rides/retry
func (h *RideHandler) Retry(c *gin.Context) {
	status, err := h.matching.Retry(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, status)
}

// Dismiss handles POST /v1/rides/dismiss
func (h *RideHandler) Dismiss(c *gin.Context) {
	h.matching.Dismiss()
	respondJSON(c, http.StatusOK, h.matching.Status())
}

// UpcomingRideResponse wraps the nullable upcoming ride record.
type UpcomingRideResponse struct {
	Ride *domain.Ride `json:"ride"`
}

// Upcoming handles GET /v1/rides/upcoming
func (h *RideHandler) Upcoming(c *gin.Context) {
	ride, err := h.matching.UpcomingRide(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, UpcomingRideResponse{Ride: ride})
}

// CancelUpcoming handles DELETE /v1/rides/upcoming
func (h *RideHandler) CancelUpcoming(c *gin.Context) {
	if err := h.matching.CancelUpcoming(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// StagePayment handles POST /v1/rides/upcoming/pay
func (h *RideHandler) StagePayment(c *gin.Context) {
	ride, err := h.matching.StagePayment(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, ride)
}
