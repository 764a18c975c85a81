package ports

import (
	"context"

	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/domain/user"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Every operation runs on behalf of an authenticated owner.
type TodoService interface {
	// List returns the owner's todos matching the filter criteria.
	List(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist or is not
	// the owner's.
	Get(ctx context.Context, ownerID, id string) (*todo.Todo, error)

	// Create validates and stores a new todo, returning the created
	// entity with server-assigned fields.
	// Returns domain.ErrValidation if the todo fails validation.
	Create(ctx context.Context, ownerID string, t *todo.Todo) (*todo.Todo, error)

	// Update validates and replaces an existing todo's fields.
	// Returns domain.ErrNotFound if the todo does not exist or is not
	// the owner's, domain.ErrValidation on invalid input.
	Update(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error)

	// SetCompleted flips the completion flag.
	// Returns domain.ErrNotFound if the todo does not exist or is not
	// the owner's.
	SetCompleted(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error)

	// Delete removes a todo.
	// Returns domain.ErrNotFound if the todo does not exist or is not
	// the owner's.
	Delete(ctx context.Context, ownerID, id string) error
}

// AuthService defines the service port for signup and login.
type AuthService interface {
	// Register creates a new account and returns the profile with a
	// fresh bearer token.
	// Returns domain.ErrAlreadyRegistered or domain.ErrWeakPassword on
	// policy failures.
	Register(ctx context.Context, email, password, name string) (*user.User, Token, error)

	// Login verifies credentials and returns the profile with a fresh
	// bearer token.
	// Returns domain.ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, email, password string) (*user.User, Token, error)
}

// FeedbackService defines the service port for user feedback.
type FeedbackService interface {
	// List returns the owner's feedback entries, newest first.
	List(ctx context.Context, ownerID string) ([]feedback.Feedback, error)

	// Create validates and stores a new feedback entry. The stored entry
	// always starts in the pending status.
	Create(ctx context.Context, ownerID string, f *feedback.Feedback) (*feedback.Feedback, error)
}

// AccountService defines the service port for profile and account lifecycle
// operations.
type AccountService interface {
	// Profile returns the owner's user profile.
	Profile(ctx context.Context, ownerID string) (*user.User, error)

	// UpdateProfile replaces the mutable profile fields and returns the
	// updated profile.
	UpdateProfile(ctx context.Context, ownerID string, u *user.User) (*user.User, error)

	// DeleteAccount removes the account and everything it owns: todos,
	// feedback, then the credentials and profile. Not transactional
	// across stores; a partial failure leaves the account intact so the
	// user can retry.
	DeleteAccount(ctx context.Context, ownerID string) error
}

// AssistService defines the service port for the two AI pipelines.
// Both pipelines are stateless: nothing they produce is persisted.
type AssistService interface {
	// ParseTodo turns free-form natural language into a repaired todo
	// draft. Validation failures and upstream model failures are
	// returned as *assist.Error.
	ParseTodo(ctx context.Context, input string) (assist.Draft, error)

	// AnalyzeTodos produces a narrative analysis of the given todos for
	// the given period. An empty list short-circuits to the canned
	// empty-state analysis without calling the model.
	AnalyzeTodos(ctx context.Context, todos []assist.Snapshot, period assist.Period) (assist.Analysis, error)
}

// SweepResult reports the outcome of one overdue sweep run.
// Errors holds one message per owner whose notification failed; failures
// never abort the remaining owners.
type SweepResult struct {
	SentCount    int
	TotalOverdue int
	Errors       []string
}

// SweepService defines the service port for the scheduled overdue sweep.
type SweepService interface {
	// CheckOverdue finds incomplete high-priority todos past the overdue
	// threshold, groups them per owner, and emails each owner that has
	// notifications enabled.
	CheckOverdue(ctx context.Context) (*SweepResult, error)
}
