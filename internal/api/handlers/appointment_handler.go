package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
)

// ScheduleService defines the interface for the appointments screen
type ScheduleService interface {
	ListAppointments(ctx context.Context, tab string) (*services.ScheduleView, error)
}

// AppointmentHandler handles appointment requests
type AppointmentHandler struct {
	service ScheduleService
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(service ScheduleService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// ListAppointments handles GET /api/appointments?tab=upcoming|completed
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ListAppointments(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
