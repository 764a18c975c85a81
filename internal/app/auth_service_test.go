package app

import (
	"context"
	"errors"
	"testing"

	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("returns user and token on success", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{
			registerFn: func(_ context.Context, email, password, name string) (*user.User, error) {
				return &user.User{ID: "u-1", Email: email, Name: name, EmailNotifications: true}, nil
			},
		}
		svc := NewAuthService(auth, discardLogger())

		u, token, err := svc.Register(context.Background(), "a@example.com", "secret123", "가영")
		if err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}
		if u.ID != "u-1" {
			t.Errorf("Register() ID = %q, want %q", u.ID, "u-1")
		}
		if token.Value == "" {
			t.Error("Register() token is empty")
		}
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{
			registerFn: func(context.Context, string, string, string) (*user.User, error) {
				return nil, domain.ErrAlreadyRegistered
			},
		}
		svc := NewAuthService(auth, discardLogger())

		_, _, err := svc.Register(context.Background(), "a@example.com", "secret123", "가영")
		if !errors.Is(err, domain.ErrAlreadyRegistered) {
			t.Errorf("Register() error = %v, want ErrAlreadyRegistered", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	t.Run("returns token for valid credentials", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{
			authFn: func(_ context.Context, email, _ string) (*user.User, error) {
				return &user.User{ID: "u-1", Email: email}, nil
			},
			issueFn: func(userID string) (ports.Token, error) {
				return ports.Token{Value: "signed-" + userID}, nil
			},
		}
		svc := NewAuthService(auth, discardLogger())

		_, token, err := svc.Login(context.Background(), "a@example.com", "secret123")
		if err != nil {
			t.Fatalf("Login() error = %v, want nil", err)
		}
		if token.Value != "signed-u-1" {
			t.Errorf("Login() token = %q, want %q", token.Value, "signed-u-1")
		}
	})

	t.Run("propagates invalid credentials", func(t *testing.T) {
		t.Parallel()
		auth := &fakeAuthenticator{
			authFn: func(context.Context, string, string) (*user.User, error) {
				return nil, domain.ErrInvalidCredentials
			},
		}
		svc := NewAuthService(auth, discardLogger())

		_, _, err := svc.Login(context.Background(), "a@example.com", "wrong")
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
		}
	})
}
