package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// OrderRepository defines the interface for order history operations
type OrderRepository interface {
	// Create stores a new order
	Create(ctx context.Context, order *entities.Order) error

	// List retrieves every order in display order
	List(ctx context.Context) ([]entities.Order, error)
}
