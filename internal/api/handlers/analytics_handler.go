package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
)

// AnalyticsService defines the interface for the analytics dashboard
type AnalyticsService interface {
	GetDashboard(ctx context.Context, period string) (*services.AnalyticsView, error)
}

// AnalyticsHandler handles analytics requests
type AnalyticsHandler struct {
	service AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetDashboard handles GET /api/analytics?period=week|month|year
func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetDashboard(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
