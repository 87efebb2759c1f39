package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// CartAdapter implements the CartRepository interface. Each session's cart is
// stored as ordered rows in cart_items.
type CartAdapter struct {
	client *postgres.Client
	db     *goqu.Database
}

// NewCartAdapter creates a new cart adapter
func NewCartAdapter(client *postgres.Client) repositories.CartRepository {
	return &CartAdapter{
		client: client,
		db:     goqu.New("postgres", client.DB()),
	}
}

// Get retrieves the cart for a session, falling back to the default
// session's cart when the session has never saved one.
func (a *CartAdapter) Get(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	saved, err := a.hasCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !saved && sessionID != repositories.DefaultSessionID {
		sessionID = repositories.DefaultSessionID
	}
	return a.listItems(ctx, sessionID)
}

func (a *CartAdapter) hasCart(ctx context.Context, sessionID string) (bool, error) {
	query, args, err := a.db.Select(goqu.COUNT("*")).
		From(cartsTable).
		Where(goqu.Ex{"session_id": sessionID}).
		ToSQL()
	if err != nil {
		return false, apperrors.NewInternalError("failed to build query", err)
	}

	var count int
	if err := a.client.DB().QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, apperrors.NewInternalError("failed to look up cart", err)
	}
	return count > 0, nil
}

func (a *CartAdapter) listItems(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	query, args, err := a.db.Select(
		"id", "name", "price", "quantity",
		goqu.COALESCE(goqu.C("product_id"), "").As("product_id"),
		goqu.COALESCE(goqu.C("seller"), "").As("seller"),
	).From(cartItemsTable).
		Where(goqu.Ex{"session_id": sessionID}).
		Order(goqu.C("position").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build query", err)
	}

	items := make([]entities.CartItem, 0)
	if err := a.client.DBx().SelectContext(ctx, &items, query, args...); err != nil {
		return nil, apperrors.NewInternalError("failed to list cart items", err)
	}
	return items, nil
}

// Save replaces the cart for a session in a single transaction
func (a *CartAdapter) Save(ctx context.Context, sessionID string, items []entities.CartItem) error {
	tx, err := a.client.BeginTx(ctx)
	if err != nil {
		return apperrors.NewInternalError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	upsert, args, err := a.db.Insert(cartsTable).
		Rows(goqu.Record{"session_id": sessionID}).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build insert query", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, args...); err != nil {
		return apperrors.NewInternalError("failed to save cart", err)
	}

	del, args, err := a.db.Delete(cartItemsTable).Where(goqu.Ex{"session_id": sessionID}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build delete query", err)
	}
	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return apperrors.NewInternalError("failed to clear cart items", err)
	}

	if len(items) > 0 {
		rows := make([]interface{}, 0, len(items))
		for i, item := range items {
			rows = append(rows, goqu.Record{
				"session_id": sessionID,
				"id":         item.ID,
				"product_id": item.ProductID,
				"name":       item.Name,
				"price":      item.Price,
				"quantity":   item.Quantity,
				"seller":     item.Seller,
				"position":   i,
			})
		}
		insert, args, err := a.db.Insert(cartItemsTable).Rows(rows...).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build insert query", err)
		}
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			return apperrors.NewInternalError("failed to insert cart items", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewInternalError("failed to commit cart", err)
	}
	return nil
}
