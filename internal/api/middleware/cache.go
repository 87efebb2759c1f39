package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
	"github.com/zatekoja/healthapp/backend/internal/infrastructure/observability"
)

// CacheConfig holds cache configuration for specific routes.
// PerSession routes are keyed by the caller's session.
type CacheConfig struct {
	TTLSeconds int
	Enabled    bool
	PerSession bool
}

// CacheMiddleware provides HTTP response caching
type CacheMiddleware struct {
	cache        providers.CacheProvider
	routeConfigs map[string]CacheConfig
	metrics      *observability.Metrics
}

// NewCacheMiddleware creates a new cache middleware. Shared screens are
// cached for ttlSeconds; per-session screens for at most a minute.
func NewCacheMiddleware(cache providers.CacheProvider, ttlSeconds int, metrics *observability.Metrics) *CacheMiddleware {
	sessionTTL := min(ttlSeconds, 60)
	return &CacheMiddleware{
		cache:   cache,
		metrics: metrics,
		routeConfigs: map[string]CacheConfig{
			"/api/cart":          {TTLSeconds: sessionTTL, Enabled: true, PerSession: true},
			"/api/documents":     {TTLSeconds: sessionTTL, Enabled: true, PerSession: true},
			"/api/orders":        {TTLSeconds: ttlSeconds, Enabled: true},
			"/api/insurance":     {TTLSeconds: ttlSeconds, Enabled: true},
			"/api/appointments":  {TTLSeconds: ttlSeconds, Enabled: true},
			"/api/analytics":     {TTLSeconds: ttlSeconds, Enabled: true},
			"/api/locations":     {TTLSeconds: ttlSeconds, Enabled: true},
			"/api/profile":       {TTLSeconds: sessionTTL, Enabled: true, PerSession: true},
			"/api/products/":     {TTLSeconds: ttlSeconds, Enabled: true}, // prefix match
			"/api/languages":     {TTLSeconds: 6 * ttlSeconds, Enabled: true},
			"/api/lab-packages":  {TTLSeconds: 6 * ttlSeconds, Enabled: true},
			"/api/subscriptions": {TTLSeconds: 6 * ttlSeconds, Enabled: true},
		},
	}
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		config := m.getRouteConfig(r.URL.Path)

		// Successful writes drop everything cached for the session
		if r.Method != http.MethodGet {
			recorder := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(recorder, r)
			if config.PerSession && recorder.statusCode < http.StatusBadRequest {
				m.InvalidateSession(r.Context(), SessionID(r))
			}
			return
		}

		if !config.Enabled {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := m.generateCacheKey(r, config)

		if cached, err := m.cache.Get(r.Context(), cacheKey); err == nil && cached != nil {
			log.Debug().Str("key", cacheKey).Msg("cache hit")
			observability.RecordCacheHit(r.Context(), m.metrics, r.URL.Path)
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		log.Debug().Str("key", cacheKey).Msg("cache miss")
		observability.RecordCacheMiss(r.Context(), m.metrics, r.URL.Path)
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}

		next.ServeHTTP(recorder, r)

		// Only cache successful responses
		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(r.Context(), cacheKey, recorder.body.Bytes(), config.TTLSeconds); err != nil {
				log.Warn().Err(err).Str("key", cacheKey).Msg("failed to cache response")
			}
		}
	})
}

// InvalidateSession drops every cached response keyed by a session
func (m *CacheMiddleware) InvalidateSession(ctx context.Context, sessionID string) {
	if err := m.cache.DeletePattern(ctx, providers.SessionCachePattern(sessionID)); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to invalidate session cache")
	}
}

// getRouteConfig gets the cache configuration for a route
func (m *CacheMiddleware) getRouteConfig(path string) CacheConfig {
	if config, exists := m.routeConfigs[path]; exists {
		return config
	}

	// Prefix match for dynamic routes, e.g. /api/products/{id} and /api/cart/items/{id}
	for pattern, config := range m.routeConfigs {
		if strings.HasPrefix(path, strings.TrimSuffix(pattern, "/")+"/") {
			return config
		}
	}

	return CacheConfig{Enabled: false}
}

// generateCacheKey hashes method, path and query. Per-session routes are
// prefixed with the session so they can be invalidated together.
func (m *CacheMiddleware) generateCacheKey(r *http.Request, config CacheConfig) string {
	key := fmt.Sprintf("%s:%s", r.Method, r.URL.Path)
	if r.URL.RawQuery != "" {
		key += "?" + r.URL.RawQuery
	}

	hash := sha256.Sum256([]byte(key))
	digest := hex.EncodeToString(hash[:])
	if config.PerSession {
		return providers.SessionCachePrefix(SessionID(r)) + digest
	}
	return providers.HTTPCachePrefix + digest
}

// responseRecorder captures the response for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

// WriteHeader captures the status code
func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

// Write captures the response body and writes to the client
func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}
	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}

// statusRecorder captures only the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
