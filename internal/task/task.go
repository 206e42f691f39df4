package task

// Task represents a single tracked task, parsed from free-form text.
type Task struct {
	RawText  string `json:"raw_text"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"`
}

// Priority levels
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DeadlineUnspecified is the deadline value when no pattern matched.
const DeadlineUnspecified = "unspecified"
