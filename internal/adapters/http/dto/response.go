// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"fmt"
	"time"

	"github.com/taskmind/taskmind/internal/domain/feedback"
	"github.com/taskmind/taskmind/internal/domain/todo"
	"github.com/taskmind/taskmind/internal/domain/user"
	"github.com/taskmind/taskmind/internal/ports"
)

const dueDateLayout = "2006-01-02"

// ParseDueDate accepts either an RFC 3339 timestamp or a bare calendar
// date. Bare dates are interpreted as local midnight.
func ParseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dueDateLayout, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid due date: %q", raw)
}

// TodoResponse represents a single todo in HTTP responses.
type TodoResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Categories  []string `json:"category"`
	DueDate     *string  `json:"due_date"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"created_at"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	resp := TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Categories:  t.Categories,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.Format(time.RFC3339)
		resp.DueDate = &due
	}
	return resp
}

// TodoListResponse represents a list of todos in HTTP responses.
type TodoListResponse struct {
	Todos []TodoResponse `json:"todos"`
	Count int            `json:"count"`
}

// ToTodoListResponse converts a slice of domain Todo entities to an HTTP
// list response DTO.
func ToTodoListResponse(todos []todo.Todo) TodoListResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return TodoListResponse{
		Todos: items,
		Count: len(items),
	}
}

// UserResponse represents an account profile in HTTP responses.
type UserResponse struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	EmailNotifications bool   `json:"email_notifications"`
	CreatedAt          string `json:"created_at"`
}

// ToUserResponse converts a domain User entity to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		EmailNotifications: u.EmailNotifications,
		CreatedAt:          u.CreatedAt.Format(time.RFC3339),
	}
}

// AuthResponse represents a successful signup or login: the profile plus a
// fresh bearer token.
type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
}

// ToAuthResponse converts a domain User and an issued token to an HTTP
// response DTO.
func ToAuthResponse(u *user.User, token ports.Token) AuthResponse {
	return AuthResponse{
		User:      ToUserResponse(u),
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt.Format(time.RFC3339),
	}
}

// FeedbackResponse represents a single feedback entry in HTTP responses.
type FeedbackResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ToFeedbackResponse converts a domain Feedback entity to an HTTP response DTO.
func ToFeedbackResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:          f.ID,
		Type:        f.Type.String(),
		Title:       f.Title,
		Description: f.Description,
		Status:      f.Status.String(),
		CreatedAt:   f.CreatedAt.Format(time.RFC3339),
	}
}

// FeedbackListResponse represents a list of feedback entries in HTTP responses.
type FeedbackListResponse struct {
	Feedback []FeedbackResponse `json:"feedback"`
	Count    int                `json:"count"`
}

// ToFeedbackListResponse converts a slice of domain Feedback entities to an
// HTTP list response DTO.
func ToFeedbackListResponse(entries []feedback.Feedback) FeedbackListResponse {
	items := make([]FeedbackResponse, len(entries))
	for i := range entries {
		items[i] = ToFeedbackResponse(&entries[i])
	}
	return FeedbackListResponse{
		Feedback: items,
		Count:    len(items),
	}
}

// SweepResponse represents the outcome of one overdue sweep run.
type SweepResponse struct {
	Success           bool     `json:"success"`
	Message           string   `json:"message"`
	SentCount         int      `json:"sentCount"`
	TotalOverdueTodos int      `json:"totalOverdueTodos,omitempty"`
	Errors            []string `json:"errors,omitempty"`
}

// ToSweepResponse converts a sweep result to an HTTP response DTO.
// A run that found nothing reports the localized no-op message.
func ToSweepResponse(result *ports.SweepResult) SweepResponse {
	msg := fmt.Sprintf("%d명에게 알림 이메일 발송 완료", result.SentCount)
	if result.TotalOverdue == 0 {
		msg = "지연된 중요 할 일이 없습니다."
	}
	return SweepResponse{
		Success:           true,
		Message:           msg,
		SentCount:         result.SentCount,
		TotalOverdueTodos: result.TotalOverdue,
		Errors:            result.Errors,
	}
}
