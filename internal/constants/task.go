package constants

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "inprogress"
	StatusInvalid    TaskStatus = "invalid"
	StatusReview     TaskStatus = "review"
	StatusMerged     TaskStatus = "merged"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusInvalid, StatusReview, StatusMerged:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection falls back to ascending for anything it does not recognize.
func ParseSortDirection(v string) SortDirection {
	if SortDirection(v) == SortDesc {
		return SortDesc
	}
	return SortAsc
}
