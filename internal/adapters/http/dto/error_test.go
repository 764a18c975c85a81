package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain"
)

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "ErrNotFound maps to 404",
			err:        domain.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "Not Found",
		},
		{
			name:       "ErrValidation maps to 400",
			err:        &domain.ValidationError{Fields: map[string]string{"title": "is required"}},
			wantStatus: http.StatusBadRequest,
			wantTitle:  "Bad Request",
		},
		{
			name:       "ErrUnauthorized maps to 401",
			err:        fmt.Errorf("missing bearer token: %w", domain.ErrUnauthorized),
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "Unauthorized",
		},
		{
			name:       "ErrForbidden maps to 403",
			err:        domain.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantTitle:  "Forbidden",
		},
		{
			name:       "ErrConflict maps to 409",
			err:        domain.ErrConflict,
			wantStatus: http.StatusConflict,
			wantTitle:  "Conflict",
		},
		{
			name:       "ErrUnavailable maps to 502",
			err:        domain.ErrUnavailable,
			wantStatus: http.StatusBadGateway,
			wantTitle:  "Bad Gateway",
		},
		{
			name:       "unknown error maps to 500",
			err:        errors.New("oops"),
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/abc", http.NoBody)
			resp := dto.NewErrorResponse(req, tt.err)

			if resp.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", resp.Status, tt.wantStatus)
			}
			if resp.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", resp.Title, tt.wantTitle)
			}
			if resp.Type != "about:blank" {
				t.Errorf("Type = %q, want %q", resp.Type, "about:blank")
			}
			if resp.Instance != "/api/v1/todos/abc" {
				t.Errorf("Instance = %q, want request URI", resp.Instance)
			}
		})
	}
}

func TestNewErrorResponse_ValidationDetails(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title":    "is required",
		"due_date": "must be RFC 3339 or YYYY-MM-DD",
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/todos", http.NoBody)
	resp := dto.NewErrorResponse(req, err)

	if len(resp.Errors) != 2 {
		t.Fatalf("len(Errors) = %d, want 2", len(resp.Errors))
	}
	// Sorted by location.
	if resp.Errors[0].Location != "body.due_date" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "body.due_date")
	}
	if resp.Errors[1].Location != "body.title" {
		t.Errorf("Errors[1].Location = %q, want %q", resp.Errors[1].Location, "body.title")
	}
	if resp.Errors[1].Message != "is required" {
		t.Errorf("Errors[1].Message = %q, want %q", resp.Errors[1].Message, "is required")
	}
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/todos/missing", http.NoBody)
	rec := httptest.NewRecorder()

	dto.WriteErrorResponse(rec, req, fmt.Errorf("todo missing: %w", domain.ErrNotFound))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}

	var body dto.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("body.Status = %d, want %d", body.Status, http.StatusNotFound)
	}
	if body.Detail != "todo missing: not found" {
		t.Errorf("body.Detail = %q, want %q", body.Detail, "todo missing: not found")
	}
}
