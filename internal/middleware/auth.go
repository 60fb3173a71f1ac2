package middleware

import (
	"context"
	"net/http"
	"strings"

	"weathervault/internal/auth"
	"weathervault/internal/http/respond"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID returns the authenticated user's identifier from the request
// context, or an empty string when the request was not authenticated.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// Authenticate rejects requests without a valid bearer token and injects the
// verified user identity into the request context. It composes around any
// handler; the wrapped handler never knows it ran.
func Authenticate(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respond.Error(w, http.StatusUnauthorized, "Authentication token required")
				return
			}

			userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}
