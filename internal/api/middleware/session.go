package middleware

import (
	"net/http"
	"strings"

	"github.com/zatekoja/healthapp/backend/internal/domain/repositories"
)

// SessionHeader carries the caller's cart session
const SessionHeader = "X-Session-ID"

// SessionID returns the request's session, or the default session when the
// header is absent or blank.
func SessionID(r *http.Request) string {
	session := strings.TrimSpace(r.Header.Get(SessionHeader))
	if session == "" {
		return repositories.DefaultSessionID
	}
	return session
}
