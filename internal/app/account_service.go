package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements ports.AccountService. Account deletion is the
// one multi-store operation in the system; it cascades through the data
// stores before touching the credentials so a failed cascade leaves a
// usable account behind.
type AccountService struct {
	users    ports.UserStore
	todos    ports.TodoStore
	feedback ports.FeedbackStore
	auth     ports.Authenticator
	logger   *slog.Logger
}

// NewAccountService creates an AccountService. A nil logger is replaced
// with a no-op logger.
func NewAccountService(
	users ports.UserStore,
	todos ports.TodoStore,
	feedback ports.FeedbackStore,
	auth ports.Authenticator,
	logger *slog.Logger,
) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{
		users:    users,
		todos:    todos,
		feedback: feedback,
		auth:     auth,
		logger:   logger,
	}
}

// Profile returns the owner's user profile.
func (s *AccountService) Profile(ctx context.Context, ownerID string) (*user.User, error) {
	u, err := s.users.Get(ctx, ownerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch profile",
			slog.String("operation", "Profile"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return u, nil
}

// UpdateProfile replaces the mutable profile fields.
func (s *AccountService) UpdateProfile(ctx context.Context, ownerID string, u *user.User) (*user.User, error) {
	s.logger.InfoContext(ctx, "updating profile", slog.String("user_id", ownerID))

	u.ID = ownerID
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update profile",
			slog.String("operation", "UpdateProfile"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteAccount removes everything the account owns, then the account
// itself. Order matters: owned data first, credentials last, so a partial
// failure never strands rows behind a deleted account.
func (s *AccountService) DeleteAccount(ctx context.Context, ownerID string) error {
	s.logger.InfoContext(ctx, "deleting account", slog.String("user_id", ownerID))

	if err := s.todos.DeleteByOwner(ctx, ownerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete account todos",
			slog.String("operation", "DeleteAccount"),
			slog.Any("error", err),
		)
		return fmt.Errorf("delete todos: %w", err)
	}

	if err := s.feedback.DeleteByOwner(ctx, ownerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete account feedback",
			slog.String("operation", "DeleteAccount"),
			slog.Any("error", err),
		)
		return fmt.Errorf("delete feedback: %w", err)
	}

	if err := s.auth.DeleteAccount(ctx, ownerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete account",
			slog.String("operation", "DeleteAccount"),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
