package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
)

// LocationService defines the interface for location search
type LocationService interface {
	Search(ctx context.Context, query string) (*services.LocationsView, error)
}

// LocationHandler handles delivery location requests
type LocationHandler struct {
	service LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

// SearchLocations handles GET /api/locations?q=
func (h *LocationHandler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
