package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zatekoja/healthapp/backend/internal/domain/providers"
)

func TestSessionCachePattern(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		want      string
	}{
		{"plain session", "alice", `http:cache:session:alice:*`},
		{"wildcard is literal", "*", `http:cache:session:\*:*`},
		{"single char wildcard", "a?c", `http:cache:session:a\?c:*`},
		{"character class", "[ab]", `http:cache:session:\[ab\]:*`},
		{"backslash", `a\b`, `http:cache:session:a\\b:*`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, providers.SessionCachePattern(tt.sessionID))
		})
	}
}

func TestSessionCachePrefix(t *testing.T) {
	assert.Equal(t, "http:cache:session:alice:", providers.SessionCachePrefix("alice"))
}
