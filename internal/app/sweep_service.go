package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/ports"
)

// Compile-time check that SweepService implements ports.SweepService.
var _ ports.SweepService = (*SweepService)(nil)

// SweepService implements ports.SweepService: the scheduled pass that
// notifies users about incomplete high-priority todos past the overdue
// threshold. Owners are processed sequentially and independently; one
// owner's failure never blocks the rest.
type SweepService struct {
	todos        ports.TodoStore
	users        ports.UserStore
	mailer       ports.Mailer
	overdueAfter time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewSweepService creates a SweepService. overdueAfter is how long past its
// due date a todo must be before it counts as overdue for notification
// purposes. A nil logger is replaced with a no-op logger.
func NewSweepService(
	todos ports.TodoStore,
	users ports.UserStore,
	mailer ports.Mailer,
	overdueAfter time.Duration,
	logger *slog.Logger,
) *SweepService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SweepService{
		todos:        todos,
		users:        users,
		mailer:       mailer,
		overdueAfter: overdueAfter,
		logger:       logger,
		now:          time.Now,
	}
}

// CheckOverdue finds qualifying todos, groups them per owner, and emails
// each owner that can receive notifications. Owners without a profile,
// without an email address, or with notifications disabled are skipped
// silently; send failures are recorded per owner and the sweep continues.
func (s *SweepService) CheckOverdue(ctx context.Context) (*ports.SweepResult, error) {
	cutoff := s.now().Add(-s.overdueAfter)

	overdue, err := s.todos.ListOverdueHighPriority(ctx, cutoff)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list overdue todos",
			slog.String("operation", "CheckOverdue"),
			slog.Any("error", err),
		)
		return nil, err
	}

	result := &ports.SweepResult{TotalOverdue: len(overdue), Errors: []string{}}
	if len(overdue) == 0 {
		s.logger.InfoContext(ctx, "overdue sweep found nothing to send")
		return result, nil
	}

	byOwner := groupByOwner(overdue)
	for _, ownerID := range sortedOwners(byOwner) {
		if err := s.notifyOwner(ctx, ownerID, byOwner[ownerID]); err != nil {
			if errors.Is(err, errSkipOwner) {
				continue
			}
			s.logger.ErrorContext(ctx, "failed to notify owner",
				slog.String("operation", "CheckOverdue"),
				slog.String("owner_id", ownerID),
				slog.Any("error", err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("owner %s: %v", ownerID, err))
			continue
		}
		result.SentCount++
	}

	s.logger.InfoContext(ctx, "overdue sweep finished",
		slog.Int("owners", len(byOwner)),
		slog.Int("sent", result.SentCount),
		slog.Int("failed", len(result.Errors)),
	)
	return result, nil
}

// errSkipOwner marks owners that are intentionally not notified. Skips are
// not failures and never appear in the sweep result.
var errSkipOwner = errors.New("owner skipped")

func (s *SweepService) notifyOwner(ctx context.Context, ownerID string, todos []todo.Todo) error {
	u, err := s.users.Get(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "skipping owner without profile",
				slog.String("owner_id", ownerID),
			)
			return errSkipOwner
		}
		return fmt.Errorf("fetch profile: %w", err)
	}

	if u.Email == "" || !u.EmailNotifications {
		return errSkipOwner
	}

	if err := s.mailer.SendOverdueDigest(ctx, u.Email, u.DisplayName(), todos); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	return nil
}

func groupByOwner(todos []todo.Todo) map[string][]todo.Todo {
	grouped := make(map[string][]todo.Todo)
	for _, t := range todos {
		grouped[t.OwnerID] = append(grouped[t.OwnerID], t)
	}
	return grouped
}

// sortedOwners fixes the iteration order so runs are deterministic.
func sortedOwners(grouped map[string][]todo.Todo) []string {
	owners := make([]string, 0, len(grouped))
	for id := range grouped {
		owners = append(owners, id)
	}
	sort.Strings(owners)
	return owners
}
