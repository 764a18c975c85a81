package app

import (
	"context"
	"log/slog"

	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService on top of the authenticator port.
// It adds structured logging; credential checks and token signing live in
// the auth adapter.
type AuthService struct {
	auth   ports.Authenticator
	logger *slog.Logger
}

// NewAuthService creates an AuthService. A nil logger is replaced with a
// no-op logger.
func NewAuthService(auth ports.Authenticator, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		auth:   auth,
		logger: logger,
	}
}

// Register creates a new account and returns the profile with a fresh
// bearer token.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*user.User, ports.Token, error) {
	u, err := s.auth.Register(ctx, email, password, name)
	if err != nil {
		s.logger.WarnContext(ctx, "registration rejected",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, ports.Token{}, err
	}

	token, err := s.auth.IssueToken(u.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, ports.Token{}, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", u.ID))
	return u, token, nil
}

// Login verifies credentials and returns the profile with a fresh bearer
// token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, ports.Token, error) {
	u, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.WarnContext(ctx, "login rejected",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, ports.Token{}, err
	}

	token, err := s.auth.IssueToken(u.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to issue token",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		return nil, ports.Token{}, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID))
	return u, token, nil
}
