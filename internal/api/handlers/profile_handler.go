package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/api/middleware"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// ProfileService defines the interface for the profile screens
type ProfileService interface {
	GetProfile(ctx context.Context, sessionID string) (*services.ProfileView, error)
	UpdatePersonalDetails(ctx context.Context, sessionID string, details entities.PersonalDetails) (*entities.HealthCard, error)
	UpdateEmergencyContact(ctx context.Context, sessionID string, contact entities.EmergencyContact) (*entities.HealthCard, error)
}

// ProfileHandler handles profile requests
type ProfileHandler struct {
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(service ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetProfile(r.Context(), middleware.SessionID(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// UpdatePersonalDetails handles PUT /api/profile/card
func (h *ProfileHandler) UpdatePersonalDetails(w http.ResponseWriter, r *http.Request) {
	var details entities.PersonalDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	card, err := h.service.UpdatePersonalDetails(r.Context(), middleware.SessionID(r), details)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, card)
}

// UpdateEmergencyContact handles PUT /api/profile/emergency-contact
func (h *ProfileHandler) UpdateEmergencyContact(w http.ResponseWriter, r *http.Request) {
	var contact entities.EmergencyContact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	card, err := h.service.UpdateEmergencyContact(r.Context(), middleware.SessionID(r), contact)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, card)
}
