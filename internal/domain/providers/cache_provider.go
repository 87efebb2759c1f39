package providers

import (
	"context"
	"strings"
)

// CacheProvider defines the interface for caching operations
type CacheProvider interface {
	// Get retrieves a value from cache. A missing key yields nil, nil.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in cache with expiration
	Set(ctx context.Context, key string, value []byte, expirationSeconds int) error

	// Delete removes a value from cache
	Delete(ctx context.Context, key string) error

	// DeletePattern removes every key matching a glob pattern
	DeletePattern(ctx context.Context, pattern string) error

	// Exists checks if a key exists in cache
	Exists(ctx context.Context, key string) (bool, error)
}

// HTTPCachePrefix prefixes every cached HTTP response
const HTTPCachePrefix = "http:cache:"

// SessionCachePrefix prefixes the cached responses scoped to one session
func SessionCachePrefix(sessionID string) string {
	return HTTPCachePrefix + "session:" + sessionID + ":"
}

// globEscaper quotes the characters Redis MATCH patterns treat specially
var globEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"?", `\?`,
	"[", `\[`,
	"]", `\]`,
)

// SessionCachePattern matches every cached response of one session. The
// session id is matched literally.
func SessionCachePattern(sessionID string) string {
	return HTTPCachePrefix + "session:" + globEscaper.Replace(sessionID) + ":*"
}
