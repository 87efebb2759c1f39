package providers

import (
	"context"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to cart events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.CartEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.CartEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

const (
	// EventChannelCartUpdates is the channel every cart mutation is published on
	EventChannelCartUpdates = "cart:updates"

	// EventChannelCartPrefix is the prefix for session-specific channels
	EventChannelCartPrefix = "cart:"
)

// GetCartChannel returns the channel name for a specific session
func GetCartChannel(sessionID string) string {
	return EventChannelCartPrefix + sessionID
}
