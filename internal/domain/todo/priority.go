package todo

// Priority represents the urgency level of a Todo.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// Glyph returns the colored marker used in AI prompt digests.
func (p Priority) Glyph() string {
	switch p {
	case PriorityHigh:
		return "🔴높음"
	case PriorityLow:
		return "🟢낮음"
	default:
		return "🟡보통"
	}
}
