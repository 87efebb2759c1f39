package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// OrderAdapter implements the OrderRepository interface
type OrderAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewOrderAdapter creates a new order adapter
func NewOrderAdapter(client *postgres.Client) repositories.OrderRepository {
	return &OrderAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Create creates a new order
func (a *OrderAdapter) Create(ctx context.Context, order *entities.Order) error {
	record := goqu.Record{
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"date":         order.Date,
		"items":        order.Items,
		"total":        order.Total,
		"status":       order.Status,
		"tracking_id":  sql.NullString{String: order.TrackingID, Valid: order.TrackingID != ""},
	}

	query, args, err := a.db.Insert(ordersTable).Rows(record).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}

	if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError(fmt.Sprintf("order %s already exists", order.ID))
		}
		return apperrors.NewInternalError("failed to create order", err)
	}
	return nil
}

// List retrieves all orders
func (a *OrderAdapter) List(ctx context.Context) ([]entities.Order, error) {
	query, args, err := a.db.Select(
		"id", "order_number", "date", "items", "total", "status",
		goqu.COALESCE(goqu.C("tracking_id"), "").As("tracking_id"),
	).From(ordersTable).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	orders := make([]entities.Order, 0)
	if err := a.client.DBx().SelectContext(ctx, &orders, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list orders", err)
	}
	return orders, nil
}
