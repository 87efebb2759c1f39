package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
)

// CacheInvalidationService drops cached cart screens when a cart changes.
// Events arrive over the event bus so every API instance sees them.
type CacheInvalidationService struct {
	cache    providers.CacheProvider
	eventBus providers.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewCacheInvalidationService creates a new cache invalidation service
func NewCacheInvalidationService(cache providers.CacheProvider, eventBus providers.EventBus) *CacheInvalidationService {
	ctx, cancel := context.WithCancel(context.Background())
	return &CacheInvalidationService{
		cache:    cache,
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start begins listening for cart events
func (s *CacheInvalidationService) Start() error {
	eventChan, err := s.eventBus.Subscribe(s.ctx, providers.EventChannelCartUpdates)
	if err != nil {
		return fmt.Errorf("failed to subscribe to cart updates: %w", err)
	}

	go s.processEvents(eventChan)
	log.Info().Msg("cache invalidation service started")
	return nil
}

// Stop stops the cache invalidation service and waits for the event loop to exit
func (s *CacheInvalidationService) Stop() {
	s.cancel()
	<-s.done
	log.Info().Msg("cache invalidation service stopped")
}

func (s *CacheInvalidationService) processEvents(eventChan <-chan *entities.CartEvent) {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			s.handleEvent(event)
		}
	}
}

func (s *CacheInvalidationService) handleEvent(event *entities.CartEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.InvalidateSession(ctx, event.SessionID); err != nil {
		log.Warn().Err(err).
			Str("session_id", event.SessionID).
			Str("event", string(event.Type)).
			Msg("failed to invalidate cart cache")
		return
	}

	log.Debug().
		Str("session_id", event.SessionID).
		Str("event", string(event.Type)).
		Msg("invalidated cart cache")
}

// InvalidateSession drops every cached response of a session
func (s *CacheInvalidationService) InvalidateSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.cache.DeletePattern(ctx, providers.SessionCachePattern(sessionID)); err != nil {
		return fmt.Errorf("failed to invalidate session %s: %w", sessionID, err)
	}
	return nil
}

// InvalidateAll drops every cached HTTP response. Used after reseeding.
func (s *CacheInvalidationService) InvalidateAll(ctx context.Context) error {
	if err := s.cache.DeletePattern(ctx, providers.HTTPCachePrefix+"*"); err != nil {
		return fmt.Errorf("failed to invalidate response cache: %w", err)
	}
	log.Info().Msg("invalidated response cache")
	return nil
}
