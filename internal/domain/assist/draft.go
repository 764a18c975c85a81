package assist

import (
	"strings"
	"time"

	"github.com/taskmind/taskmind/internal/domain/todo"
)

// DefaultTitle replaces titles the model left empty or unusably short.
const DefaultTitle = "새 할 일"

// titleTruncateAt is where over-long titles are cut before the ellipsis is
// appended, keeping the result within todo.MaxTitleLength.
const titleTruncateAt = todo.MaxTitleLength - 3

// dueDateLayout is the calendar-date wire format the model is asked for.
const dueDateLayout = "2006-01-02"

// Draft is an ephemeral, unpersisted parse result pending user confirmation.
// DueTime is only meaningful alongside DueDate; both are nil or both are set
// after repair.
type Draft struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	DueDate     *string       `json:"due_date"`
	DueTime     *string       `json:"due_time"`
	Priority    todo.Priority `json:"priority"`
	Categories  []string      `json:"category"`
}

// Repair coerces a possibly-malformed model draft into one satisfying the
// todo invariants. It runs regardless of how well the model followed the
// schema and is idempotent: repairing an already-valid draft is a no-op.
//
// A due date that fails to parse, or that falls strictly before today's
// midnight, is discarded together with its due time. This matches observed
// product behavior (an already-past date is dropped, not clamped to today).
func Repair(d Draft, today time.Time) Draft {
	d.Title = repairTitle(d.Title)
	d.Description = strings.TrimSpace(d.Description)

	if d.DueDate != nil {
		// Parse in today's zone so the comparison is calendar-date against
		// calendar-date; parsing in UTC would shift the boundary for any
		// server west of it.
		due, err := time.ParseInLocation(dueDateLayout, *d.DueDate, today.Location())
		midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		if err != nil || due.Before(midnight) {
			d.DueDate = nil
			d.DueTime = nil
		}
	} else {
		d.DueTime = nil
	}

	if !d.Priority.IsValid() {
		d.Priority = todo.PriorityMedium
	}

	d.Categories = todo.NormalizeCategories(d.Categories)

	return d
}

func repairTitle(title string) string {
	title = strings.TrimSpace(title)

	runes := []rune(title)
	if len(runes) > todo.MaxTitleLength {
		return string(runes[:titleTruncateAt]) + "..."
	}
	if len(runes) == 0 {
		return DefaultTitle
	}
	return title
}
