package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/ports"
)

const headerAuthorization = "Authorization"

const bearerPrefix = "Bearer "

// ownerIDKey is the context key for the authenticated user's ID.
type ownerIDKey struct{}

// WithOwnerID returns a new context with the authenticated user's ID stored
// in it. Exposed for handler tests.
func WithOwnerID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ownerIDKey{}, id)
}

// OwnerIDFromContext extracts the authenticated user's ID from the context.
// Returns an empty string if the request was not authenticated.
func OwnerIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(ownerIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Auth returns middleware that requires a valid bearer token on every
// request. The token is verified through the authenticator and the user ID
// it was issued for is stored in the request context. Missing, malformed,
// and invalid tokens are rejected with 401 before the handler runs.
func Auth(auth ports.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			userID, err := auth.VerifyToken(token)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := WithOwnerID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get(headerAuthorization)
	if header == "" {
		return "", fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", fmt.Errorf("malformed authorization header: %w", domain.ErrUnauthorized)
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized)
	}
	return token, nil
}
