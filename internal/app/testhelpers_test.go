package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:         "t-1",
		OwnerID:    "u-1",
		Title:      "장보기",
		Priority:   todo.PriorityMedium,
		Categories: []string{"개인"},
		CreatedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Function-field fakes for the outbound ports. Unset fields panic on use so
// a test only stubs what it expects to be called.

type fakeTodoStore struct {
	listFn        func(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error)
	getFn         func(ctx context.Context, ownerID, id string) (*todo.Todo, error)
	createFn      func(ctx context.Context, t *todo.Todo) (*todo.Todo, error)
	updateFn      func(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error)
	setCompleteFn func(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error)
	deleteFn      func(ctx context.Context, ownerID, id string) error
	deleteOwnerFn func(ctx context.Context, ownerID string) error
	listOverdueFn func(ctx context.Context, cutoff time.Time) ([]todo.Todo, error)
}

var _ ports.TodoStore = (*fakeTodoStore)(nil)

func (f *fakeTodoStore) List(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error) {
	return f.listFn(ctx, ownerID, filter)
}

func (f *fakeTodoStore) Get(ctx context.Context, ownerID, id string) (*todo.Todo, error) {
	return f.getFn(ctx, ownerID, id)
}

func (f *fakeTodoStore) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	return f.createFn(ctx, t)
}

func (f *fakeTodoStore) Update(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error) {
	return f.updateFn(ctx, ownerID, id, t)
}

func (f *fakeTodoStore) SetCompleted(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error) {
	return f.setCompleteFn(ctx, ownerID, id, completed)
}

func (f *fakeTodoStore) Delete(ctx context.Context, ownerID, id string) error {
	return f.deleteFn(ctx, ownerID, id)
}

func (f *fakeTodoStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	return f.deleteOwnerFn(ctx, ownerID)
}

func (f *fakeTodoStore) ListOverdueHighPriority(ctx context.Context, cutoff time.Time) ([]todo.Todo, error) {
	return f.listOverdueFn(ctx, cutoff)
}

type fakeFeedbackStore struct {
	listFn        func(ctx context.Context, ownerID string) ([]feedback.Feedback, error)
	createFn      func(ctx context.Context, f *feedback.Feedback) (*feedback.Feedback, error)
	deleteOwnerFn func(ctx context.Context, ownerID string) error
}

var _ ports.FeedbackStore = (*fakeFeedbackStore)(nil)

func (f *fakeFeedbackStore) List(ctx context.Context, ownerID string) ([]feedback.Feedback, error) {
	return f.listFn(ctx, ownerID)
}

func (f *fakeFeedbackStore) Create(ctx context.Context, entry *feedback.Feedback) (*feedback.Feedback, error) {
	return f.createFn(ctx, entry)
}

func (f *fakeFeedbackStore) DeleteByOwner(ctx context.Context, ownerID string) error {
	return f.deleteOwnerFn(ctx, ownerID)
}

type fakeUserStore struct {
	getFn    func(ctx context.Context, id string) (*user.User, error)
	updateFn func(ctx context.Context, u *user.User) (*user.User, error)
}

var _ ports.UserStore = (*fakeUserStore)(nil)

func (f *fakeUserStore) Get(ctx context.Context, id string) (*user.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserStore) Update(ctx context.Context, u *user.User) (*user.User, error) {
	return f.updateFn(ctx, u)
}

type fakeAuthenticator struct {
	registerFn func(ctx context.Context, email, password, name string) (*user.User, error)
	authFn     func(ctx context.Context, email, password string) (*user.User, error)
	issueFn    func(userID string) (ports.Token, error)
	verifyFn   func(token string) (string, error)
	deleteFn   func(ctx context.Context, userID string) error
}

var _ ports.Authenticator = (*fakeAuthenticator)(nil)

func (f *fakeAuthenticator) Register(ctx context.Context, email, password, name string) (*user.User, error) {
	return f.registerFn(ctx, email, password, name)
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, email, password string) (*user.User, error) {
	return f.authFn(ctx, email, password)
}

func (f *fakeAuthenticator) IssueToken(userID string) (ports.Token, error) {
	if f.issueFn != nil {
		return f.issueFn(userID)
	}
	return ports.Token{Value: "token-" + userID}, nil
}

func (f *fakeAuthenticator) VerifyToken(token string) (string, error) {
	if f.verifyFn != nil {
		return f.verifyFn(token)
	}
	return "", domain.ErrUnauthorized
}

func (f *fakeAuthenticator) DeleteAccount(ctx context.Context, userID string) error {
	return f.deleteFn(ctx, userID)
}

type fakeGenerator struct {
	parseFn   func(ctx context.Context, prompt string) (assist.Draft, error)
	analyzeFn func(ctx context.Context, prompt string) (assist.Analysis, error)
}

var _ ports.Generator = (*fakeGenerator)(nil)

func (f *fakeGenerator) ParseTodo(ctx context.Context, prompt string) (assist.Draft, error) {
	return f.parseFn(ctx, prompt)
}

func (f *fakeGenerator) AnalyzeTodos(ctx context.Context, prompt string) (assist.Analysis, error) {
	return f.analyzeFn(ctx, prompt)
}

type fakeMailer struct {
	sendFn func(ctx context.Context, to, name string, todos []todo.Todo) error
}

var _ ports.Mailer = (*fakeMailer)(nil)

func (f *fakeMailer) SendOverdueDigest(ctx context.Context, to, name string, todos []todo.Todo) error {
	return f.sendFn(ctx, to, name, todos)
}
