package services

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
)

// OrderCard is one order as rendered on the orders screen
type OrderCard struct {
	entities.Order
	Style       viewstate.StatusStyle `json:"style"`
	Trackable   bool                  `json:"trackable"`
	Reorderable bool                  `json:"reorderable"`
}

// OrdersView is the orders screen for one tab
type OrdersView struct {
	Tab    viewstate.OrderTab         `json:"tab"`
	Orders []OrderCard                `json:"orders"`
	Counts map[viewstate.OrderTab]int `json:"counts"`
}

// OrderService builds the order history screen
type OrderService struct {
	repo repositories.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// ListOrders returns the orders in a tab. An empty tab means all orders;
// an unknown tab yields no orders.
func (s *OrderService) ListOrders(ctx context.Context, tab string) (*OrdersView, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	selected := viewstate.OrderTabAll
	if tab != "" {
		selected = viewstate.OrderTab(tab)
	}

	filtered := viewstate.FilterOrders(orders, selected)
	cards := make([]OrderCard, 0, len(filtered))
	for _, o := range filtered {
		cards = append(cards, OrderCard{
			Order:       o,
			Style:       viewstate.OrderStatusStyle(o.Status),
			Trackable:   viewstate.Trackable(o.Status),
			Reorderable: viewstate.Reorderable(o.Status),
		})
	}

	return &OrdersView{
		Tab:    selected,
		Orders: cards,
		Counts: viewstate.OrderTabCounts(orders),
	}, nil
}
