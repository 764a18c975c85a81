package app

import (
	"context"
	"log/slog"

	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time check that FeedbackService implements ports.FeedbackService.
var _ ports.FeedbackService = (*FeedbackService)(nil)

// FeedbackService implements ports.FeedbackService on top of the feedback
// store.
type FeedbackService struct {
	store  ports.FeedbackStore
	logger *slog.Logger
}

// NewFeedbackService creates a FeedbackService. A nil logger is replaced
// with a no-op logger.
func NewFeedbackService(store ports.FeedbackStore, logger *slog.Logger) *FeedbackService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FeedbackService{
		store:  store,
		logger: logger,
	}
}

// List returns the owner's feedback entries, newest first.
func (s *FeedbackService) List(ctx context.Context, ownerID string) ([]feedback.Feedback, error) {
	entries, err := s.store.List(ctx, ownerID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list feedback",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return entries, nil
}

// Create validates and stores a new feedback entry. Status is always reset
// to pending; clients cannot choose it.
func (s *FeedbackService) Create(ctx context.Context, ownerID string, f *feedback.Feedback) (*feedback.Feedback, error) {
	s.logger.InfoContext(ctx, "creating feedback", slog.String("type", f.Type.String()))

	f.OwnerID = ownerID
	f.Status = feedback.StatusPending
	if err := f.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, f)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create feedback",
			slog.String("operation", "Create"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}
