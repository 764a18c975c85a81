package todo

// StatusFilter selects todos by completion state when listing.
// "overdue" means incomplete with a due date in the past.
type StatusFilter string

const (
	StatusCompleted  StatusFilter = "completed"
	StatusInProgress StatusFilter = "in-progress"
	StatusOverdue    StatusFilter = "overdue"
)

// IsValid returns true if the status filter is one of the defined constants.
func (s StatusFilter) IsValid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusOverdue:
		return true
	default:
		return false
	}
}

// SortBy selects the column todos are ordered by when listing.
type SortBy string

const (
	SortByPriority  SortBy = "priority"
	SortByDueDate   SortBy = "due_date"
	SortByCreatedAt SortBy = "created_at"
)

// IsValid returns true if the sort key is one of the defined constants.
func (s SortBy) IsValid() bool {
	switch s {
	case SortByPriority, SortByDueDate, SortByCreatedAt:
		return true
	default:
		return false
	}
}

// Filter holds optional filter and sort criteria for listing todos.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Search     string
	Priorities []Priority
	Categories []string
	Statuses   []StatusFilter
	SortBy     SortBy
	Ascending  bool
}
