package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
)

// InsuranceService defines the interface for the insurance screen
type InsuranceService interface {
	GetOverview(ctx context.Context, status string) (*services.InsuranceView, error)
}

// InsuranceHandler handles insurance requests
type InsuranceHandler struct {
	service InsuranceService
}

// NewInsuranceHandler creates a new insurance handler
func NewInsuranceHandler(service InsuranceService) *InsuranceHandler {
	return &InsuranceHandler{service: service}
}

// GetOverview handles GET /api/insurance?status=
func (h *InsuranceHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetOverview(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
