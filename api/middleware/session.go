package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/biteaffair/storefront-backend/pkg/logger"
)

// SessionHeader carries the anonymous storefront session. The browser has no
// account; a generated id ties its cart, wizard and preferences together.
const SessionHeader = "X-BA-Session"

type contextKey string

const ctxSessionID contextKey = "session_id"

// Session assigns a session id when the client presents none and echoes it
// back so the storefront can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			w.Header().Set(SessionHeader, sessionID)

			ctx := context.WithValue(r.Context(), ctxSessionID, sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithSessionID injects the session id into the context for downstream handlers.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSessionID, sessionID)
}

// SessionIDFromContext returns the session id set by Session, empty if unset.
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}
