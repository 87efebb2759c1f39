package handlers

import (
	"context"
	"net/http"

	"github.com/zatekoja/healthapp/backend/internal/application/services"
)

// OrderService defines the interface for the order history screen
type OrderService interface {
	ListOrders(ctx context.Context, tab string) (*services.OrdersView, error)
}

// OrderHandler handles order requests
type OrderHandler struct {
	service OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// ListOrders handles GET /api/orders?tab=all|processing|delivered
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.ListOrders(r.Context(), r.URL.Query().Get("tab"))
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
