package auth

import (
	"context"
	"net/http"
)

type contextKey string

const userIDKey contextKey = "user_id"

// UserIDFromContext returns the acting user's ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}

// WithUserID returns a context carrying the acting user's ID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// DefaultUserID is the roster member assumed to be logged in when
// CURRENT_USER_ID is not configured. There is no real authentication;
// every request acts as this fixed user.
const DefaultUserID = "user-1"

// FixedUser is middleware that stamps every request with the given
// user ID. Activity entries are attributed to this user.
func FixedUser(userID string) func(http.Handler) http.Handler {
	if userID == "" {
		userID = DefaultUserID
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
