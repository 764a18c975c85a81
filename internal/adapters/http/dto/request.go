package dto

import (
	"fmt"
	"strings"

	"github.com/taskmind/taskmind/internal/domain"
	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/domain/todo"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// RegisterRequest represents the JSON body for creating a new account.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *RegisterRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// LoginRequest represents the JSON body for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *LoginRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = msgRequired
	}
	if r.Password == "" {
		fields["password"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateProfileRequest represents the JSON body for updating the caller's
// profile. All fields are optional; nil means "do not change this field".
type UpdateProfileRequest struct {
	Name               *string `json:"name,omitempty"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProfileRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"name": msgMustNotEmpty},
		}
	}
	return nil
}

// CreateTodoRequest represents the JSON body for creating a new todo.
type CreateTodoRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority,omitempty"`
	Categories  []string `json:"category,omitempty"`
	DueDate     *string  `json:"due_date,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if r.Priority != "" && !todo.Priority(r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", r.Priority)
	}
	if r.DueDate != nil {
		if _, err := ParseDueDate(*r.DueDate); err != nil {
			fields["due_date"] = "must be RFC 3339 or YYYY-MM-DD"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// UpdateTodoRequest represents the JSON body for updating an existing todo.
// All fields are optional; nil means "do not change this field". Setting
// clear_due_date removes an existing due date.
type UpdateTodoRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Priority    *string   `json:"priority,omitempty"`
	Categories  *[]string `json:"category,omitempty"`
	DueDate     *string   `json:"due_date,omitempty"`
	ClearDue    bool      `json:"clear_due_date,omitempty"`
}

// Validate checks that any provided fields have valid values.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}
	if r.Priority != nil && !todo.Priority(*r.Priority).IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", *r.Priority)
	}
	if r.DueDate != nil {
		if _, err := ParseDueDate(*r.DueDate); err != nil {
			fields["due_date"] = "must be RFC 3339 or YYYY-MM-DD"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SetCompletedRequest represents the JSON body for the completion toggle.
type SetCompletedRequest struct {
	Completed bool `json:"completed"`
}

// Validate implements the request validation contract; a well-formed body
// is all that is required.
func (r *SetCompletedRequest) Validate() error {
	return nil
}

// CreateFeedbackRequest represents the JSON body for submitting feedback.
type CreateFeedbackRequest struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks that required fields are present and the type is known.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateFeedbackRequest) Validate() error {
	fields := make(map[string]string)

	if !feedback.Type(r.Type).IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", r.Type)
	}
	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		fields["description"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
