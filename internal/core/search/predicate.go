// Package search turns a task search request into an owner-scoped predicate.
//
// A Predicate is a conjunction: every populated field must hold for a task to
// match. Inside the text condition title and description are OR-ed, and inside
// the tag condition the requested tags are OR-ed. Zero values mean no constraint.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
)

const day = 24 * time.Hour

type Predicate struct {
	OwnerID   uint64
	Text      string
	Completed *bool
	Priority  *domain.Priority
	Tags      []string

	// Resolved due-date window. DueFrom and DueTo are inclusive, DueBefore is exclusive.
	DueFrom        *time.Time
	DueTo          *time.Time
	DueBefore      *time.Time
	OnlyIncomplete bool

	bucket *domain.DueDateBucket
}

// AppliedFilters echoes the normalised filters a search ran with.
type AppliedFilters struct {
	Completed *bool                 `json:"completed,omitempty"`
	Priority  *domain.Priority      `json:"priority,omitempty"`
	Tags      []string              `json:"tags,omitempty"`
	DueDate   *domain.DueDateBucket `json:"dueDate,omitempty"`
}

// Build normalises filter and resolves its due-date bucket against now.
// Bucket boundaries are computed in now's location.
func Build(filter domain.SearchFilter, now time.Time) Predicate {
	p := Predicate{
		OwnerID:   filter.OwnerID,
		Text:      strings.TrimSpace(filter.Text),
		Completed: filter.Completed,
		Priority:  filter.Priority,
		Tags:      normalizeTags(filter.Tags),
	}

	if filter.DueDate == nil {
		return p
	}

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch *filter.DueDate {
	case domain.DueOverdue:
		before := now
		p.DueBefore = &before
		p.OnlyIncomplete = true
	case domain.DueToday:
		p.setWindow(startOfToday, startOfToday.Add(day))
	case domain.DueThisWeek:
		p.setWindow(startOfToday, startOfToday.Add(7*day))
	case domain.DueThisMonth:
		// Day 0 of next month is the last day of this one.
		lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location())
		p.setWindow(startOfToday, lastDay)
	default:
		return p
	}
	bucket := *filter.DueDate
	p.bucket = &bucket

	return p
}

func (p *Predicate) setWindow(from, to time.Time) {
	p.DueFrom = &from
	p.DueTo = &to
}

// HasDueDateWindow reports whether the predicate constrains the due date.
func (p Predicate) HasDueDateWindow() bool {
	return p.DueFrom != nil || p.DueTo != nil || p.DueBefore != nil
}

// Matches evaluates the predicate against a single task.
func (p Predicate) Matches(task domain.Task) bool {
	if task.OwnerID != p.OwnerID {
		return false
	}

	if p.Text != "" && !matchesText(task, p.Text) {
		return false
	}

	if p.Completed != nil && task.Completed != *p.Completed {
		return false
	}

	if p.Priority != nil && task.Priority != *p.Priority {
		return false
	}

	if len(p.Tags) > 0 && !matchesAnyTag(task, p.Tags) {
		return false
	}

	if p.OnlyIncomplete && task.Completed {
		return false
	}

	if p.HasDueDateWindow() {
		if task.DueDate == nil {
			return false
		}
		due := *task.DueDate
		if p.DueBefore != nil && !due.Before(*p.DueBefore) {
			return false
		}
		if p.DueFrom != nil && due.Before(*p.DueFrom) {
			return false
		}
		if p.DueTo != nil && due.After(*p.DueTo) {
			return false
		}
	}

	return true
}

func (p Predicate) Applied() AppliedFilters {
	return AppliedFilters{
		Completed: p.Completed,
		Priority:  p.Priority,
		Tags:      p.Tags,
		DueDate:   p.bucket,
	}
}

// Filter returns the tasks matching p, newest first.
func (p Predicate) Filter(tasks []domain.Task) []domain.Task {
	matched := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if p.Matches(task) {
			matched = append(matched, task)
		}
	}
	SortNewestFirst(matched)
	return matched
}

// SortNewestFirst orders tasks by creation time descending, then by id descending.
func SortNewestFirst(tasks []domain.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		}
		return tasks[i].ID > tasks[j].ID
	})
}

func matchesText(task domain.Task, text string) bool {
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(task.Title), needle) {
		return true
	}
	return task.Description != nil && strings.Contains(strings.ToLower(*task.Description), needle)
}

func matchesAnyTag(task domain.Task, tags []string) bool {
	for _, tag := range tags {
		if task.HasTag(tag) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
