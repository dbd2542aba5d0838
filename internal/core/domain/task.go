package domain

import (
	"strings"
	"time"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

const (
	MaxTitleLength = 200
	MaxTagLength   = 20
	MaxTags        = 20
)

// ParsePriority maps user input onto the closed priority set.
// The second return value is false for anything outside it.
func ParsePriority(value string) (Priority, bool) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(value))); p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p, true
	default:
		return "", false
	}
}

type Task struct {
	ID          uint64
	OwnerID     uint64
	Title       string
	Description *string
	Completed   bool
	DueDate     *time.Time
	Priority    Priority
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasTag reports exact membership of tag in the task's tag list.
func (t Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

type CreateTaskInput struct {
	OwnerID     uint64
	Title       string
	Description *string
	DueDate     *time.Time
	Priority    Priority
	Tags        []string
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Completed      *bool
	DueDate        *time.Time
	DueDateSet     bool
	Priority       *Priority
	Tags           []string
	TagsSet        bool
}

// IsEmpty reports whether the update carries no field at all.
func (in UpdateTaskInput) IsEmpty() bool {
	return in.Title == nil &&
		!in.DescriptionSet &&
		in.Completed == nil &&
		!in.DueDateSet &&
		in.Priority == nil &&
		!in.TagsSet
}

// Apply returns a copy of task with the update merged in.
func (in UpdateTaskInput) Apply(task Task) Task {
	if in.Title != nil {
		task.Title = *in.Title
	}
	if in.DescriptionSet {
		task.Description = in.Description
	}
	if in.Completed != nil {
		task.Completed = *in.Completed
	}
	if in.DueDateSet {
		task.DueDate = in.DueDate
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.TagsSet {
		task.Tags = append([]string(nil), in.Tags...)
	}
	return task
}
