package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ridelite/internal/service"
)

// TripHandler handles HTTP requests for trip history.
type TripHandler struct {
	wallet *service.WalletService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(wallet *service.WalletService) *TripHandler {
	return &TripHandler{wallet: wallet}
}

// GetAll handles GET /v1/trips
func (h *TripHandler) GetAll(c *gin.Context) {
	trips, err := h.wallet.TripHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, trips)
}
