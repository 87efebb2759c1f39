package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/api/middleware"
	"github.com/zatekoja/healthapp/backend/internal/application/services"
	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/observability"
)

// CartService defines the interface for cart operations
type CartService interface {
	GetCart(ctx context.Context, sessionID string) (*services.CartView, error)
	AddItem(ctx context.Context, sessionID, productID string, quantity int) (*services.CartView, error)
	UpdateQuantity(ctx context.Context, sessionID, itemID string, delta int) (*services.CartView, error)
	RemoveItem(ctx context.Context, sessionID, itemID string) (*services.CartView, error)
}

// CartHandler handles cart requests. Every request is scoped to the
// session named by the X-Session-ID header.
type CartHandler struct {
	service CartService
	metrics *observability.Metrics
}

// NewCartHandler creates a new cart handler. metrics may be nil.
func NewCartHandler(service CartService, metrics *observability.Metrics) *CartHandler {
	return &CartHandler{
		service: service,
		metrics: metrics,
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Delta *int `json:"delta"`
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.GetCart(r.Context(), middleware.SessionID(r))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.ProductID == "" {
		respondWithError(w, http.StatusBadRequest, "productId is required")
		return
	}

	view, err := h.service.AddItem(r.Context(), middleware.SessionID(r), req.ProductID, req.Quantity)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.RecordCartMutation(r.Context(), h.metrics, string(entities.CartEventItemAdded))
	respondWithJSON(w, http.StatusCreated, view)
}

// UpdateQuantity handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		respondWithError(w, http.StatusBadRequest, "item ID is required")
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if req.Delta == nil {
		respondWithError(w, http.StatusBadRequest, "delta is required")
		return
	}

	view, err := h.service.UpdateQuantity(r.Context(), middleware.SessionID(r), itemID, *req.Delta)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.RecordCartMutation(r.Context(), h.metrics, string(entities.CartEventQuantityChanged))
	respondWithJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		respondWithError(w, http.StatusBadRequest, "item ID is required")
		return
	}

	view, err := h.service.RemoveItem(r.Context(), middleware.SessionID(r), itemID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	observability.RecordCartMutation(r.Context(), h.metrics, string(entities.CartEventItemRemoved))
	respondWithJSON(w, http.StatusOK, view)
}
