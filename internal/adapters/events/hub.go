package events

import (
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/domain/entities"
)

// subscriberBuffer is how many undelivered events a subscriber may lag by
// before further events are dropped for it
const subscriberBuffer = 100

// hub tracks subscriber channels per event channel. It is not safe for
// concurrent use; each bus guards it with its own lock.
type hub struct {
	subscribers map[string]map[chan *entities.CartEvent]struct{}
	closed      bool
}

func newHub() hub {
	return hub{subscribers: make(map[string]map[chan *entities.CartEvent]struct{})}
}

// add registers a new subscriber and reports whether it is the channel's first
func (h *hub) add(channel string) (chan *entities.CartEvent, bool) {
	eventChan := make(chan *entities.CartEvent, subscriberBuffer)
	if h.closed {
		close(eventChan)
		return eventChan, false
	}

	first := len(h.subscribers[channel]) == 0
	if first {
		h.subscribers[channel] = make(map[chan *entities.CartEvent]struct{})
	}
	h.subscribers[channel][eventChan] = struct{}{}
	return eventChan, first
}

// remove closes one subscriber and reports whether the channel is now empty.
// Removing an already closed subscriber is a no-op.
func (h *hub) remove(channel string, eventChan chan *entities.CartEvent) bool {
	subscribers := h.subscribers[channel]
	if _, ok := subscribers[eventChan]; !ok {
		return false
	}
	delete(subscribers, eventChan)
	close(eventChan)
	if len(subscribers) == 0 {
		delete(h.subscribers, channel)
		return true
	}
	return false
}

// deliver hands event to every subscriber without blocking on slow ones
func (h *hub) deliver(channel string, event *entities.CartEvent) {
	for subscriber := range h.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			log.Warn().Str("channel", channel).Str("session_id", event.SessionID).Msg("subscriber full, dropping event")
		}
	}
}

// drop closes every subscriber of channel
func (h *hub) drop(channel string) {
	for subscriber := range h.subscribers[channel] {
		close(subscriber)
	}
	delete(h.subscribers, channel)
}

// shutdown closes every subscriber; later subscriptions start closed
func (h *hub) shutdown() {
	for channel := range h.subscribers {
		h.drop(channel)
	}
	h.closed = true
}

func (h *hub) count(channel string) int {
	return len(h.subscribers[channel])
}
