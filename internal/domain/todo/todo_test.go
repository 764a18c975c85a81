package todo

import (
	"strings"
	"testing"
	"time"

	"github.com/taskmind/taskmind/internal/domain"
)

func validTodo() Todo {
	return Todo{
		ID:         "a4b8c9d0",
		OwnerID:    "user-1",
		Title:      "팀 회의 준비",
		Priority:   PriorityHigh,
		Categories: []string{"업무"},
		CreatedAt:  time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestTodo_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid todo passes", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		if err := td.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("empty title fails", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		td.Title = "   "
		assertFieldError(t, td.Validate(), "title")
	})

	t.Run("over-long title fails", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		td.Title = strings.Repeat("가", MaxTitleLength+1)
		assertFieldError(t, td.Validate(), "title")
	})

	t.Run("title of exactly max length passes", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		td.Title = strings.Repeat("가", MaxTitleLength)
		if err := td.Validate(); err != nil {
			t.Fatalf("Validate() = %v, want nil", err)
		}
	})

	t.Run("invalid priority fails", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		td.Priority = "urgent"
		assertFieldError(t, td.Validate(), "priority")
	})

	t.Run("empty categories fail", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		td.Categories = nil
		assertFieldError(t, td.Validate(), "categories")
	})

	t.Run("blank category entry fails", func(t *testing.T) {
		t.Parallel()
		td := validTodo()
		td.Categories = []string{"업무", " "}
		assertFieldError(t, td.Validate(), "categories")
	})
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	verr, ok := err.(*domain.ValidationError)
	if !ok {
		t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("Validate() fields = %v, want entry for %q", verr.Fields, field)
	}
}

func TestTodo_IsOverdue(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name      string
		dueDate   *time.Time
		completed bool
		want      bool
	}{
		{"past due and incomplete", &past, false, true},
		{"past due but completed", &past, true, false},
		{"future due", &future, false, false},
		{"no due date", nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := validTodo()
			td.DueDate = tt.dueDate
			td.Completed = tt.completed
			if got := td.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeCategories(t *testing.T) {
	t.Parallel()

	t.Run("dedupes and drops blanks preserving order", func(t *testing.T) {
		t.Parallel()
		got := NormalizeCategories([]string{"업무", "업무", "", "공부"})
		want := []string{"업무", "공부"}
		if len(got) != len(want) {
			t.Fatalf("NormalizeCategories() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("NormalizeCategories()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("empty input yields default category", func(t *testing.T) {
		t.Parallel()
		got := NormalizeCategories(nil)
		if len(got) != 1 || got[0] != DefaultCategory {
			t.Errorf("NormalizeCategories(nil) = %v, want [%q]", got, DefaultCategory)
		}
	})

	t.Run("whitespace-only entries yield default category", func(t *testing.T) {
		t.Parallel()
		got := NormalizeCategories([]string{" ", "\t"})
		if len(got) != 1 || got[0] != DefaultCategory {
			t.Errorf("NormalizeCategories() = %v, want [%q]", got, DefaultCategory)
		}
	})
}
