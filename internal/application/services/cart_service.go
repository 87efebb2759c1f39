package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
	"github.com/zatekoja/healthapp/backend/internal/domain/viewstate"
	apperrors "github.com/zatekoja/healthapp/backend/pkg/errors"
)

// CartView is the cart screen: the session's lines and their totals
type CartView struct {
	SessionID string               `json:"session_id"`
	Items     []entities.CartItem  `json:"items"`
	Totals    viewstate.CartTotals `json:"totals"`
}

// cartLockStripes is the fixed number of mutation locks shared by all sessions
const cartLockStripes = 256

// CartService handles per-session cart reads and mutations.
// Mutations for one session are serialized; each rewrites the whole cart.
type CartService struct {
	repo        repositories.CartRepository
	catalog     repositories.CatalogRepository
	eventBus    providers.EventBus
	deliveryFee float64

	locks [cartLockStripes]sync.Mutex
}

// NewCartService creates a new cart service. eventBus may be nil.
func NewCartService(
	repo repositories.CartRepository,
	catalog repositories.CatalogRepository,
	eventBus providers.EventBus,
	deliveryFee float64,
) *CartService {
	return &CartService{
		repo:        repo,
		catalog:     catalog,
		eventBus:    eventBus,
		deliveryFee: deliveryFee,
	}
}

// GetCart returns the session's cart with totals
func (s *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	sessionID = normalizeSession(sessionID)
	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(sessionID, items), nil
}

// AddItem adds quantity units of a catalogue product. A product already in
// the cart has its line quantity increased instead.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperrors.NewValidationError("product id is required")
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(product.Price); err != nil {
		return nil, err
	}

	item := entities.CartItem{
		ID:        uuid.New().String(),
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
		Seller:    product.Seller,
	}

	var itemID string
	view, err := s.mutate(ctx, sessionID, func(items []entities.CartItem) ([]entities.CartItem, error) {
		updated := viewstate.AddItem(items, item)
		for _, line := range updated {
			if line.ProductID == product.ID {
				itemID = line.ID
				break
			}
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, view.SessionID, itemID, entities.CartEventItemAdded)
	return view, nil
}

// UpdateQuantity applies a signed delta to a line. The quantity never drops below 1.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, delta int) (*CartView, error) {
	view, err := s.mutate(ctx, sessionID, func(items []entities.CartItem) ([]entities.CartItem, error) {
		updated, found := viewstate.UpdateQuantity(items, itemID, delta)
		if !found {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("cart item %s not found", itemID))
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, view.SessionID, itemID, entities.CartEventQuantityChanged)
	return view, nil
}

// RemoveItem deletes a line from the cart
func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	view, err := s.mutate(ctx, sessionID, func(items []entities.CartItem) ([]entities.CartItem, error) {
		updated, found := viewstate.RemoveItem(items, itemID)
		if !found {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("cart item %s not found", itemID))
		}
		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, view.SessionID, itemID, entities.CartEventItemRemoved)
	return view, nil
}

func (s *CartService) mutate(
	ctx context.Context,
	sessionID string,
	apply func([]entities.CartItem) ([]entities.CartItem, error),
) (*CartView, error) {
	sessionID = normalizeSession(sessionID)

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	items, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	updated, err := apply(items)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, sessionID, updated); err != nil {
		return nil, err
	}
	return s.view(sessionID, updated), nil
}

// sessionLock picks the session's lock stripe. Sessions that share a stripe
// also serialize with each other.
func (s *CartService) sessionLock(sessionID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.locks[h.Sum32()%cartLockStripes]
}

func (s *CartService) view(sessionID string, items []entities.CartItem) *CartView {
	if items == nil {
		items = []entities.CartItem{}
	}
	return &CartView{
		SessionID: sessionID,
		Items:     items,
		Totals:    viewstate.Totals(items, s.deliveryFee),
	}
}

func (s *CartService) publish(ctx context.Context, sessionID, itemID string, eventType entities.CartEventType) {
	if s.eventBus == nil {
		return
	}

	event := &entities.CartEvent{
		SessionID: sessionID,
		ItemID:    itemID,
		Type:      eventType,
		Timestamp: time.Now().UTC(),
	}

	for _, channel := range []string{providers.EventChannelCartUpdates, providers.GetCartChannel(sessionID)} {
		if err := s.eventBus.Publish(ctx, channel, event); err != nil {
			log.Warn().Err(err).Str("channel", channel).Str("session_id", sessionID).Msg("failed to publish cart event")
		}
	}
}

func validatePrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return apperrors.NewValidationError(fmt.Sprintf("invalid price %v", price))
	}
	return nil
}

func normalizeSession(sessionID string) string {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return repositories.DefaultSessionID
	}
	return sessionID
}
