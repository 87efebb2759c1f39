package events

import (
	"context"
	"sync"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
)

// LocalEventBus delivers events within a single process. It is used when
// Redis is disabled.
type LocalEventBus struct {
	mu  sync.Mutex
	hub hub
}

// NewLocalEventBus creates a new in-process event bus
func NewLocalEventBus() providers.EventBus {
	return &LocalEventBus{hub: newHub()}
}

// Publish delivers event to the channel's current subscribers
func (b *LocalEventBus) Publish(ctx context.Context, channel string, event *entities.CartEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hub.deliver(channel, event)
	return nil
}

// Subscribe returns a channel that receives events until ctx is done
func (b *LocalEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.CartEvent, error) {
	b.mu.Lock()
	eventChan, _ := b.hub.add(channel)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		b.hub.remove(channel, eventChan)
		b.mu.Unlock()
	}()

	return eventChan, nil
}

// Unsubscribe closes every subscription on channel
func (b *LocalEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hub.drop(channel)
	return nil
}

// Close closes all subscriptions. Later publishes are dropped.
func (b *LocalEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hub.shutdown()
	return nil
}
