package dto_test

import (
	"errors"
	"testing"

	"github.com/taskmind/taskmind/internal/adapters/http/dto"
	"github.com/taskmind/taskmind/internal/domain"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid request passes",
			req: dto.RegisterRequest{
				Email:    "gayoung@example.com",
				Password: "correct horse battery",
				Name:     "가영",
			},
			wantErr: false,
		},
		{
			name: "name is optional",
			req: dto.RegisterRequest{
				Email:    "gayoung@example.com",
				Password: "correct horse battery",
			},
			wantErr: false,
		},
		{
			name:      "empty email fails",
			req:       dto.RegisterRequest{Password: "correct horse battery"},
			wantErr:   true,
			wantField: "email",
		},
		{
			name:      "empty password fails",
			req:       dto.RegisterRequest{Email: "gayoung@example.com"},
			wantErr:   true,
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.LoginRequest{Email: "gayoung@example.com", Password: "pw"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := dto.LoginRequest{Email: "   "}
	err := missing.Validate()
	requireValidationField(t, err, "email")
	requireValidationField(t, err, "password")
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateProfileRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "empty patch passes",
			req:     dto.UpdateProfileRequest{},
			wantErr: false,
		},
		{
			name: "name and notifications pass",
			req: dto.UpdateProfileRequest{
				Name:               stringPtr("가영"),
				EmailNotifications: boolPtr(false),
			},
			wantErr: false,
		},
		{
			name:      "blank name fails",
			req:       dto.UpdateProfileRequest{Name: stringPtr("  ")},
			wantErr:   true,
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "valid request passes",
			req:     dto.CreateTodoRequest{Title: "장보기"},
			wantErr: false,
		},
		{
			name: "valid request with all fields",
			req: dto.CreateTodoRequest{
				Title:       "보고서 작성",
				Description: "분기 실적 정리",
				Priority:    "high",
				Categories:  []string{"업무"},
				DueDate:     stringPtr("2026-03-01"),
			},
			wantErr: false,
		},
		{
			name: "RFC 3339 due date passes",
			req: dto.CreateTodoRequest{
				Title:   "회의",
				DueDate: stringPtr("2026-03-01T15:00:00+09:00"),
			},
			wantErr: false,
		},
		{
			name:      "empty title fails",
			req:       dto.CreateTodoRequest{Description: "no title"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "whitespace-only title fails",
			req:       dto.CreateTodoRequest{Title: "   "},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "unknown priority fails",
			req:       dto.CreateTodoRequest{Title: "장보기", Priority: "urgent"},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "garbled due date fails",
			req:       dto.CreateTodoRequest{Title: "장보기", DueDate: stringPtr("next tuesday")},
			wantErr:   true,
			wantField: "due_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.UpdateTodoRequest
		wantErr   bool
		wantField string
	}{
		{
			name:    "empty patch passes",
			req:     dto.UpdateTodoRequest{},
			wantErr: false,
		},
		{
			name: "partial patch passes",
			req: dto.UpdateTodoRequest{
				Priority: stringPtr("low"),
				DueDate:  stringPtr("2026-03-02"),
			},
			wantErr: false,
		},
		{
			name:    "clearing the due date passes",
			req:     dto.UpdateTodoRequest{ClearDue: true},
			wantErr: false,
		},
		{
			name:      "blank title fails",
			req:       dto.UpdateTodoRequest{Title: stringPtr(" ")},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "unknown priority fails",
			req:       dto.UpdateTodoRequest{Priority: stringPtr("critical")},
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "garbled due date fails",
			req:       dto.UpdateTodoRequest{DueDate: stringPtr("03/01/2026")},
			wantErr:   true,
			wantField: "due_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestCreateFeedbackRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       dto.CreateFeedbackRequest
		wantErr   bool
		wantField string
	}{
		{
			name: "valid bug report passes",
			req: dto.CreateFeedbackRequest{
				Type:        "bug",
				Title:       "정렬이 깨져요",
				Description: "마감일 정렬이 반대로 나옵니다",
			},
			wantErr: false,
		},
		{
			name: "unknown type fails",
			req: dto.CreateFeedbackRequest{
				Type:        "complaint",
				Title:       "t",
				Description: "d",
			},
			wantErr:   true,
			wantField: "type",
		},
		{
			name:      "empty title fails",
			req:       dto.CreateFeedbackRequest{Type: "feature", Description: "d"},
			wantErr:   true,
			wantField: "title",
		},
		{
			name:      "empty description fails",
			req:       dto.CreateFeedbackRequest{Type: "feature", Title: "t"},
			wantErr:   true,
			wantField: "description",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}
