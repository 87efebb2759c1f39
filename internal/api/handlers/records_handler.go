package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/api/middleware"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// RecordsService defines the interface for health record operations
type RecordsService interface {
	ListDocuments(ctx context.Context, sessionID, docType string) (*services.DocumentsView, error)
	Upload(ctx context.Context, sessionID string, upload services.DocumentUpload) (*entities.Document, error)
}

// RecordsHandler handles health record requests
type RecordsHandler struct {
	service RecordsService
}

// NewRecordsHandler creates a new records handler
func NewRecordsHandler(service RecordsService) *RecordsHandler {
	return &RecordsHandler{service: service}
}

// ListDocuments handles GET /api/documents?type=
func (h *RecordsHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ListDocuments(r.Context(), middleware.SessionID(r), r.URL.Query().Get("type"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// UploadDocument handles POST /api/documents
func (h *RecordsHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	var upload services.DocumentUpload
	if err := json.NewDecoder(r.Body).Decode(&upload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	doc, err := h.service.Upload(r.Context(), middleware.SessionID(r), upload)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, doc)
}
