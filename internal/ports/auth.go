package ports

import (
	"context"
	"time"

	"github.com/taskmind/taskmind/internal/domain/user"
)

// Token is a signed bearer token together with its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Authenticator defines the identity port: credential storage, password
// verification, and bearer token issuing/verification.
// Implemented by the auth adapter; called by the application layer and the
// HTTP auth middleware.
type Authenticator interface {
	// Register creates a new account and its user profile.
	// Returns domain.ErrAlreadyRegistered if the email is taken and
	// domain.ErrWeakPassword if the password fails the policy.
	Register(ctx context.Context, email, password, name string) (*user.User, error)

	// Authenticate verifies an email/password pair.
	// Returns domain.ErrInvalidCredentials on any mismatch; callers must
	// not learn whether the email exists.
	Authenticate(ctx context.Context, email, password string) (*user.User, error)

	// IssueToken signs a bearer token for the given user.
	IssueToken(userID string) (Token, error)

	// VerifyToken validates a bearer token and returns the user ID it
	// was issued for. Returns domain.ErrUnauthorized for expired,
	// malformed, or badly signed tokens.
	VerifyToken(token string) (string, error)

	// DeleteAccount removes the account and its credentials.
	// Returns domain.ErrNotFound if no such account exists.
	DeleteAccount(ctx context.Context, userID string) error
}
