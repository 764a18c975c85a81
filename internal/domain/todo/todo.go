package todo

import (
	"fmt"
	"strings"
	"time"

	"github.com/taskmind/taskmind/internal/domain"
)

// MaxTitleLength is the upper bound on todo titles after normalization.
const MaxTitleLength = 100

// DefaultCategory is assigned when a todo ends up with no categories
// after cleaning.
const DefaultCategory = "개인"

// Todo represents a task item owned by a single user. OwnerID scopes every
// read and write; records are never visible across owners.
type Todo struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Priority    Priority
	Categories  []string
	DueDate     *time.Time
	Completed   bool
	CreatedAt   time.Time
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	title := strings.TrimSpace(t.Title)
	if title == "" {
		fields["title"] = domain.MsgRequired
	}
	if len([]rune(title)) > MaxTitleLength {
		fields["title"] = fmt.Sprintf("must be at most %d characters", MaxTitleLength)
	}
	if !t.Priority.IsValid() {
		fields["priority"] = fmt.Sprintf("invalid: %q", t.Priority)
	}
	if len(t.Categories) == 0 {
		fields["categories"] = "must have at least one entry"
	}
	for _, c := range t.Categories {
		if strings.TrimSpace(c) == "" {
			fields["categories"] = "must not contain blank entries"
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// IsOverdue reports whether the todo is incomplete with a due date in the past.
func (t *Todo) IsOverdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && t.DueDate.Before(now)
}

// NormalizeCategories trims entries, drops blanks, and removes duplicates
// while preserving first-occurrence order. An empty result is replaced with
// the default category.
func NormalizeCategories(categories []string) []string {
	seen := make(map[string]bool, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	if len(out) == 0 {
		return []string{DefaultCategory}
	}
	return out
}
