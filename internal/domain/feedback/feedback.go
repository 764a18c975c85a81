// Package feedback holds the user feedback entity (bug reports and feature
// requests). Status transitions beyond the server-assigned default are an
// admin concern and are not modeled here.
package feedback

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskmind/taskmind/internal/domain"
)

// Type distinguishes the kind of report a user submitted.
type Type string

const (
	TypeBug     Type = "bug"
	TypeFeature Type = "feature"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeBug, TypeFeature:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// Status is the review state of a feedback entry. New entries default to
// StatusPending server-side.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusResolved, StatusRejected:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Feedback is a user-submitted bug report or feature request.
type Feedback struct {
	ID          string
	OwnerID     string
	Type        Type
	Title       string
	Description string
	Status      Status
	CreatedAt   time.Time
}

// Validate checks business rules for the Feedback entity.
func (f *Feedback) Validate() error {
	fields := make(map[string]string)

	if !f.Type.IsValid() {
		fields["type"] = fmt.Sprintf("invalid: %q", f.Type)
	}
	if strings.TrimSpace(f.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if strings.TrimSpace(f.Description) == "" {
		fields["description"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
