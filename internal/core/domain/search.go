package domain

import "strings"

type DueDateBucket string

const (
	DueOverdue   DueDateBucket = "overdue"
	DueToday     DueDateBucket = "today"
	DueThisWeek  DueDateBucket = "this-week"
	DueThisMonth DueDateBucket = "this-month"
)

func ParseDueDateBucket(value string) (DueDateBucket, bool) {
	switch b := DueDateBucket(strings.ToLower(strings.TrimSpace(value))); b {
	case DueOverdue, DueToday, DueThisWeek, DueThisMonth:
		return b, true
	default:
		return "", false
	}
}

// SearchFilter is a task search request. Every field except OwnerID is optional;
// a nil pointer or empty value means no constraint on that dimension.
type SearchFilter struct {
	OwnerID   uint64
	Text      string
	Completed *bool
	Priority  *Priority
	Tags      []string
	DueDate   *DueDateBucket
}
