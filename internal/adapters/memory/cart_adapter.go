package memory

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
)

// CartAdapter keeps one cart per session. Sessions start from the seeded cart.
type CartAdapter struct {
	store *Store
}

// NewCartAdapter creates a new in-memory cart repository
func NewCartAdapter(store *Store) repositories.CartRepository {
	return &CartAdapter{store: store}
}

// Get retrieves the cart for a session
func (a *CartAdapter) Get(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	var items []entities.CartItem
	a.store.readSession(sessionID, func(state sessionState, ds *Dataset) {
		if state.hasCart {
			items = clone(state.cart)
			return
		}
		items = clone(ds.Cart)
	})
	return items, nil
}

// Save replaces the cart for a session
func (a *CartAdapter) Save(ctx context.Context, sessionID string, items []entities.CartItem) error {
	a.store.updateSession(sessionID, func(state sessionState, _ *Dataset) sessionState {
		state.cart = clone(items)
		state.hasCart = true
		return state
	})
	return nil
}
