package middleware

import (
	"context"
	"net/http"
	"strings"

	"moviereviews/internal/httputil"
	"moviereviews/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the authenticated user
	UserKey contextKey = "user"
)

// TokenVerifier resolves a raw bearer token to the user it encodes.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, raw string) (*model.User, error)
}

// AuthMiddleware rejects requests that don't carry a valid
// "Authorization: <scheme> <token>" header. The scheme match is
// case-sensitive; a request with the wrong label is treated as
// unauthenticated and no signature verification is attempted. On success
// the resolved user is placed in the request context.
func AuthMiddleware(verifier TokenVerifier, scheme string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.WriteUnauthorized(w, "Missing authentication token.")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != scheme {
				httputil.WriteUnauthorized(w, "Invalid authorization scheme.")
				return
			}

			user, err := verifier.VerifyToken(r.Context(), parts[1])
			if err != nil {
				httputil.WriteUnauthorized(w, "Invalid authentication token.")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext extracts the authenticated user from the request
// context. Returns the user and true if found, or nil and false if not.
func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey).(*model.User)
	return user, ok
}
