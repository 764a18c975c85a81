package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskmind/taskmind/internal/adapters/http/middleware"
	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

const testOwnerID = "user-1"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// asOwner stores the test owner ID the way the auth middleware would.
func asOwner(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithOwnerID(r.Context(), testOwnerID))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:         "todo-1",
		OwnerID:    testOwnerID,
		Title:      "장보기",
		Priority:   todo.PriorityMedium,
		Categories: []string{"개인"},
		CreatedAt:  testTime,
	}
}

func validUser() user.User {
	return user.User{
		ID:                 testOwnerID,
		Email:              "gayoung@example.com",
		Name:               "가영",
		EmailNotifications: true,
		CreatedAt:          testTime,
	}
}

func validFeedback() feedback.Feedback {
	return feedback.Feedback{
		ID:          "fb-1",
		OwnerID:     testOwnerID,
		Type:        feedback.TypeBug,
		Title:       "목록이 비어 보임",
		Description: "새로고침하면 사라집니다",
		Status:      feedback.StatusPending,
		CreatedAt:   testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func jsonBodyRaw(s string) *bytes.Buffer {
	return bytes.NewBufferString(s)
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// Function-field fakes for the service ports.

type fakeTodoService struct {
	listFn         func(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error)
	getFn          func(ctx context.Context, ownerID, id string) (*todo.Todo, error)
	createFn       func(ctx context.Context, ownerID string, t *todo.Todo) (*todo.Todo, error)
	updateFn       func(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error)
	setCompletedFn func(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error)
	deleteFn       func(ctx context.Context, ownerID, id string) error
}

var _ ports.TodoService = (*fakeTodoService)(nil)

func (f *fakeTodoService) List(ctx context.Context, ownerID string, filter todo.Filter) ([]todo.Todo, error) {
	return f.listFn(ctx, ownerID, filter)
}

func (f *fakeTodoService) Get(ctx context.Context, ownerID, id string) (*todo.Todo, error) {
	return f.getFn(ctx, ownerID, id)
}

func (f *fakeTodoService) Create(ctx context.Context, ownerID string, t *todo.Todo) (*todo.Todo, error) {
	return f.createFn(ctx, ownerID, t)
}

func (f *fakeTodoService) Update(ctx context.Context, ownerID, id string, t *todo.Todo) (*todo.Todo, error) {
	return f.updateFn(ctx, ownerID, id, t)
}

func (f *fakeTodoService) SetCompleted(ctx context.Context, ownerID, id string, completed bool) (*todo.Todo, error) {
	return f.setCompletedFn(ctx, ownerID, id, completed)
}

func (f *fakeTodoService) Delete(ctx context.Context, ownerID, id string) error {
	return f.deleteFn(ctx, ownerID, id)
}

type fakeAuthService struct {
	registerFn func(ctx context.Context, email, password, name string) (*user.User, ports.Token, error)
	loginFn    func(ctx context.Context, email, password string) (*user.User, ports.Token, error)
}

var _ ports.AuthService = (*fakeAuthService)(nil)

func (f *fakeAuthService) Register(ctx context.Context, email, password, name string) (*user.User, ports.Token, error) {
	return f.registerFn(ctx, email, password, name)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*user.User, ports.Token, error) {
	return f.loginFn(ctx, email, password)
}

type fakeAccountService struct {
	profileFn func(ctx context.Context, ownerID string) (*user.User, error)
	updateFn  func(ctx context.Context, ownerID string, u *user.User) (*user.User, error)
	deleteFn  func(ctx context.Context, ownerID string) error
}

var _ ports.AccountService = (*fakeAccountService)(nil)

func (f *fakeAccountService) Profile(ctx context.Context, ownerID string) (*user.User, error) {
	return f.profileFn(ctx, ownerID)
}

func (f *fakeAccountService) UpdateProfile(ctx context.Context, ownerID string, u *user.User) (*user.User, error) {
	return f.updateFn(ctx, ownerID, u)
}

func (f *fakeAccountService) DeleteAccount(ctx context.Context, ownerID string) error {
	return f.deleteFn(ctx, ownerID)
}

type fakeFeedbackService struct {
	listFn   func(ctx context.Context, ownerID string) ([]feedback.Feedback, error)
	createFn func(ctx context.Context, ownerID string, fb *feedback.Feedback) (*feedback.Feedback, error)
}

var _ ports.FeedbackService = (*fakeFeedbackService)(nil)

func (f *fakeFeedbackService) List(ctx context.Context, ownerID string) ([]feedback.Feedback, error) {
	return f.listFn(ctx, ownerID)
}

func (f *fakeFeedbackService) Create(ctx context.Context, ownerID string, fb *feedback.Feedback) (*feedback.Feedback, error) {
	return f.createFn(ctx, ownerID, fb)
}

type fakeAssistService struct {
	parseFn   func(ctx context.Context, input string) (assist.Draft, error)
	analyzeFn func(ctx context.Context, todos []assist.Snapshot, period assist.Period) (assist.Analysis, error)
}

var _ ports.AssistService = (*fakeAssistService)(nil)

func (f *fakeAssistService) ParseTodo(ctx context.Context, input string) (assist.Draft, error) {
	return f.parseFn(ctx, input)
}

func (f *fakeAssistService) AnalyzeTodos(ctx context.Context, todos []assist.Snapshot, period assist.Period) (assist.Analysis, error) {
	return f.analyzeFn(ctx, todos, period)
}

type fakeSweepService struct {
	checkFn func(ctx context.Context) (*ports.SweepResult, error)
}

var _ ports.SweepService = (*fakeSweepService)(nil)

func (f *fakeSweepService) CheckOverdue(ctx context.Context) (*ports.SweepResult, error) {
	return f.checkFn(ctx)
}
