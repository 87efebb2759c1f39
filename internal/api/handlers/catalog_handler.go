package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// CatalogService defines the interface for catalogue reads
type CatalogService interface {
	GetProduct(ctx context.Context, id string, quantity, delta int) (*services.ProductView, error)
	ListLabPackages(ctx context.Context) ([]services.LabPackageCard, error)
	ListSubscriptions(ctx context.Context) ([]services.SubscriptionCard, error)
	GetSubscription(ctx context.Context, id string) (*services.SubscriptionCard, error)
	SearchLanguages(ctx context.Context, query string) ([]entities.Language, error)
}

// CatalogHandler handles product, lab package, subscription and language requests
type CatalogHandler struct {
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// GetProduct handles GET /api/products/{id}?quantity=&delta=
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "product ID is required")
		return
	}

	quantity, err := intParam(r, "quantity", 1)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid quantity parameter")
		return
	}
	delta, err := intParam(r, "delta", 0)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid delta parameter")
		return
	}

	view, err := h.service.GetProduct(r.Context(), id, quantity, delta)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// ListLabPackages handles GET /api/lab-packages
func (h *CatalogHandler) ListLabPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListLabPackages(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"packages": packages,
	})
}

// ListSubscriptions handles GET /api/subscriptions
func (h *CatalogHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListSubscriptions(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"plans": plans,
	})
}

// GetSubscription handles GET /api/subscriptions/{id}
func (h *CatalogHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	plan, err := h.service.GetSubscription(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, plan)
}

// SearchLanguages handles GET /api/languages?q=
func (h *CatalogHandler) SearchLanguages(w http.ResponseWriter, r *http.Request) {
	languages, err := h.service.SearchLanguages(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"languages": languages,
	})
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
