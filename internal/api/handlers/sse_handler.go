package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/api/middleware"
	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
)

const defaultHeartbeat = 30 * time.Second

// CartStreamHandler streams a session's cart events as Server-Sent Events
// so other open screens can refetch the cart.
type CartStreamHandler struct {
	eventBus  providers.EventBus
	heartbeat time.Duration

	mu      sync.RWMutex
	clients map[string]int // session -> open streams
}

// NewCartStreamHandler creates a new cart stream handler
func NewCartStreamHandler(eventBus providers.EventBus) *CartStreamHandler {
	return &CartStreamHandler{
		eventBus:  eventBus,
		heartbeat: defaultHeartbeat,
		clients:   make(map[string]int),
	}
}

// WithHeartbeat overrides the keep-alive interval
func (h *CartStreamHandler) WithHeartbeat(interval time.Duration) *CartStreamHandler {
	h.heartbeat = interval
	return h
}

// StreamCart handles GET /api/stream/cart. EventSource cannot set headers,
// so the session may also be passed as ?session=.
func (h *CartStreamHandler) StreamCart(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = middleware.SessionID(r)
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	channel := providers.GetCartChannel(sessionID)
	eventChan, err := h.eventBus.Subscribe(r.Context(), channel)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Msg("failed to subscribe to cart events")
		respondWithError(w, http.StatusBadGateway, "cart events unavailable")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	h.register(sessionID)
	defer h.unregister(sessionID)

	h.sendEvent(w, "connected", map[string]interface{}{
		"session_id": sessionID,
		"timestamp":  time.Now(),
	})
	flusher.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			log.Debug().Str("session_id", sessionID).Msg("cart stream client disconnected")
			return
		case <-ticker.C:
			h.sendEvent(w, "heartbeat", map[string]interface{}{
				"timestamp": time.Now(),
			})
			flusher.Flush()
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if event == nil {
				continue
			}
			h.sendEvent(w, string(event.Type), event)
			flusher.Flush()
		}
	}
}

// Stats handles GET /api/stream/stats
func (h *CartStreamHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]int{
		"connected_clients": h.ClientCount(),
	})
}

// ClientCount returns the number of open streams
func (h *CartStreamHandler) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, n := range h.clients {
		count += n
	}
	return count
}

func (h *CartStreamHandler) register(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[sessionID]++
}

func (h *CartStreamHandler) unregister(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[sessionID] <= 1 {
		delete(h.clients, sessionID)
		return
	}
	h.clients[sessionID]--
}

func (h *CartStreamHandler) sendEvent(w http.ResponseWriter, eventType string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Str("event", eventType).Msg("failed to marshal stream event")
		return
	}

	fmt.Fprintf(w, "event: %s\n", eventType)
	fmt.Fprintf(w, "data: %s\n\n", payload)
}
