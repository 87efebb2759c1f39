package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	redisclient "github.com/zatekoja/healthapp/backend/internal/infrastructure/clients/redis"
)

// RedisEventBus carries cart events over Redis Pub/Sub so every API and
// stream instance sees every mutation. One Redis subscription is held per
// channel and fanned out to local subscribers.
type RedisEventBus struct {
	client *redisclient.Client

	mu      sync.Mutex
	hub     hub
	pubsubs map[string]*redis.PubSub

	ctx    context.Context
	cancel context.CancelFunc
}

// NewRedisEventBus creates a new Redis-based event bus
func NewRedisEventBus(client *redisclient.Client) providers.EventBus {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client:  client,
		hub:     newHub(),
		pubsubs: make(map[string]*redis.PubSub),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Publish sends event to every instance subscribed to channel
func (b *RedisEventBus) Publish(ctx context.Context, channel string, event *entities.CartEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := b.client.Client().Publish(ctx, channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}

	log.Debug().
		Str("channel", channel).
		Str("session_id", event.SessionID).
		Str("type", string(event.Type)).
		Msg("published cart event")
	return nil
}

// Subscribe returns a channel that receives events until ctx is done
func (b *RedisEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.CartEvent, error) {
	b.mu.Lock()
	eventChan, first := b.hub.add(channel)
	if first {
		pubsub := b.client.Client().Subscribe(b.ctx, channel)
		b.pubsubs[channel] = pubsub
		go b.receive(channel, pubsub)
	}
	subscribers := b.hub.count(channel)
	b.mu.Unlock()

	log.Info().Str("channel", channel).Int("subscribers", subscribers).Msg("subscribed to channel")

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.hub.remove(channel, eventChan) {
			b.closePubSub(channel)
		}
	}()

	return eventChan, nil
}

// receive decodes Redis messages for one channel until its subscription closes
func (b *RedisEventBus) receive(channel string, pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		var event entities.CartEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Warn().Err(err).Str("channel", channel).Msg("dropping undecodable event")
			continue
		}

		b.mu.Lock()
		b.hub.deliver(channel, &event)
		b.mu.Unlock()
	}
}

// closePubSub releases the Redis subscription of channel. Callers hold b.mu.
func (b *RedisEventBus) closePubSub(channel string) error {
	pubsub, ok := b.pubsubs[channel]
	if !ok {
		return nil
	}
	delete(b.pubsubs, channel)
	if err := pubsub.Close(); err != nil {
		return fmt.Errorf("failed to close subscription %s: %w", channel, err)
	}
	log.Info().Str("channel", channel).Msg("closed subscription")
	return nil
}

// Unsubscribe closes every local subscriber of channel and its Redis subscription
func (b *RedisEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hub.drop(channel)
	return b.closePubSub(channel)
}

// Close closes the event bus and all subscriptions
func (b *RedisEventBus) Close() error {
	b.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.hub.shutdown()
	var errs []error
	for channel := range b.pubsubs {
		if err := b.closePubSub(channel); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info().Msg("event bus closed")
	return nil
}
