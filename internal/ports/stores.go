package ports

import (
	"context"
	"time"

	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/domain/user"
)

// TodoStore defines the persistence port for todos. All reads and writes are
// scoped to an owner: a row belonging to another user behaves exactly like a
// missing row.
type TodoStore interface {
	// List returns the owner's todos matching the filter criteria.
	// Pass a zero-value Filter to list everything, newest first.
	List(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist or belongs
	// to a different owner.
	Get(ctx context.Context, ownerID, id string) (*todo.Todo, error)

	// Create inserts a new todo and returns the stored entity with
	// server-assigned fields (ID, CreatedAt).
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Update replaces the mutable fields of an existing todo and returns
	// the updated entity.
	// Returns domain.ErrNotFound if the todo does not exist or belongs
	// to a different owner.
	Update(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error)

	// SetCompleted flips the completion flag and returns the updated entity.
	// Returns domain.ErrNotFound if the todo does not exist or belongs
	// to a different owner.
	SetCompleted(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error)

	// Delete removes a todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist or belongs
	// to a different owner.
	Delete(ctx context.Context, ownerID, id string) error

	// DeleteByOwner removes every todo belonging to the owner. Used by
	// account deletion; deleting an owner with no todos is not an error.
	DeleteByOwner(ctx context.Context, ownerID string) error

	// ListOverdueHighPriority returns, across all owners, the incomplete
	// high-priority todos whose due date is before the cutoff. Used by the
	// overdue sweep.
	ListOverdueHighPriority(ctx context.Context, cutoff time.Time) ([]todo.Todo, error)
}

// FeedbackStore defines the persistence port for user feedback entries.
type FeedbackStore interface {
	// List returns the owner's feedback entries, newest first.
	List(ctx context.Context, ownerID string) ([]feedback.Feedback, error)

	// Create inserts a new feedback entry and returns the stored entity.
	Create(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error)

	// DeleteByOwner removes every feedback entry belonging to the owner.
	DeleteByOwner(ctx context.Context, ownerID string) error
}

// UserStore defines the persistence port for user profiles.
type UserStore interface {
	// Get returns a user by ID.
	// Returns domain.ErrNotFound if no such user exists.
	Get(ctx context.Context, id string) (*user.User, error)

	// Update replaces the mutable profile fields (name, notification
	// preference) and returns the updated entity.
	// Returns domain.ErrNotFound if no such user exists.
	Update(ctx context.Context, u *user.User) (*user.User, error)
}
