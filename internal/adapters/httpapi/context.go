package httpapi

import (
	"context"
	"net/http"
	"strings"
)

// SessionHeader scopes in-flight generation and idempotency records to one
// browser session.
const SessionHeader = "X-Session-ID"

const anonymousSession = "anonymous"

type sessionKey struct{}

func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// SessionFromContext returns the caller's session id, or "anonymous" when the
// request carried none.
func SessionFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey{}).(string); ok && v != "" {
		return v
	}
	return anonymousSession
}

func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := strings.TrimSpace(r.Header.Get(SessionHeader)); id != "" {
			r = r.WithContext(WithSession(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}
