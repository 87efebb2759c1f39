package database

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
)

// cartTTL bounds how long a cart read may be served from cache (seconds)
const cartTTL = 300

// CachedCartAdapter wraps a CartRepository with a read-through cache.
// Saves write the new cart through to the cache.
type CachedCartAdapter struct {
	adapter repositories.CartRepository
	cache   providers.CacheProvider
}

// NewCachedCartAdapter creates a new cached cart adapter
func NewCachedCartAdapter(adapter repositories.CartRepository, cache providers.CacheProvider) repositories.CartRepository {
	return &CachedCartAdapter{
		adapter: adapter,
		cache:   cache,
	}
}

// CartCacheKey returns the cache key holding a session's cart
func CartCacheKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get retrieves a cart with caching
func (a *CachedCartAdapter) Get(ctx context.Context, sessionID string) ([]entities.CartItem, error) {
	key := CartCacheKey(sessionID)

	if cached, err := a.cache.Get(ctx, key); err == nil && cached != nil {
		var items []entities.CartItem
		decodeErr := json.Unmarshal(cached, &items)
		if decodeErr == nil {
			return items, nil
		}
		log.Warn().Err(decodeErr).Str("session_id", sessionID).Msg("discarding undecodable cached cart")
	}

	items, err := a.adapter.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	a.store(ctx, key, items)
	return items, nil
}

// Save persists the cart and refreshes the cached copy
func (a *CachedCartAdapter) Save(ctx context.Context, sessionID string, items []entities.CartItem) error {
	if err := a.adapter.Save(ctx, sessionID, items); err != nil {
		return err
	}
	a.store(ctx, CartCacheKey(sessionID), items)
	return nil
}

func (a *CachedCartAdapter) store(ctx context.Context, key string, items []entities.CartItem) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := a.cache.Set(ctx, key, data, cartTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache cart")
	}
}
