package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ridelite/internal/domain"
)

// MetaHandler serves the static catalogues: ride types and location
// suggestions.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// RideTypes handles GET /v1/ride-types
func (h *MetaHandler) RideTypes(c *gin.Context) {
	respondJSON(c, http.StatusOK, domain.RideTypes())
}

// Locations handles GET /v1/locations?q=
func (h *MetaHandler) Locations(c *gin.Context) {
	query := strings.ToLower(c.Query("q"))

	var matches []string
	for _, location := range domain.SuggestedLocations {
		if query == "" || strings.Contains(strings.ToLower(location), query) {
			matches = append(matches, location)
		}
	}

	respondJSON(c, http.StatusOK, matches)
}
