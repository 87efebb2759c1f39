package repositories

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// DefaultSessionID is used when a request carries no session header, and
// holds the seeded cart every new session starts from.
const DefaultSessionID = "default"

// CartRepository stores one cart per session. Carts are replaced as a
// whole on every write.
type CartRepository interface {
	// Get retrieves the cart for a session. An unknown session yields the
	// seeded default cart.
	Get(ctx context.Context, sessionID string) ([]entities.CartItem, error)

	// Save replaces the cart for a session
	Save(ctx context.Context, sessionID string, items []entities.CartItem) error
}
