package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
)

var ErrInvalidSearchFilter = errors.New("invalid search filter")

// BuildSearchFilter reads q, completed, priority, tags and dueDate from query.
// Unrecognised completed/priority/dueDate values are dropped (no constraint),
// unless strict is set, in which case they are rejected.
func BuildSearchFilter(ownerID uint64, query url.Values, strict bool) (domain.SearchFilter, error) {
	filter := domain.SearchFilter{
		OwnerID: ownerID,
		Text:    strings.TrimSpace(query.Get("q")),
		Tags:    splitTags(query.Get("tags")),
	}

	if raw := strings.TrimSpace(query.Get("completed")); raw != "" {
		completed, err := strconv.ParseBool(raw)
		switch {
		case err == nil:
			filter.Completed = &completed
		case strict:
			return domain.SearchFilter{}, ErrInvalidSearchFilter
		}
	}

	if raw := strings.TrimSpace(query.Get("priority")); raw != "" {
		priority, ok := domain.ParsePriority(raw)
		switch {
		case ok:
			filter.Priority = &priority
		case strict:
			return domain.SearchFilter{}, ErrInvalidSearchFilter
		}
	}

	if raw := strings.TrimSpace(query.Get("dueDate")); raw != "" {
		bucket, ok := domain.ParseDueDateBucket(raw)
		switch {
		case ok:
			filter.DueDate = &bucket
		case strict:
			return domain.SearchFilter{}, ErrInvalidSearchFilter
		}
	}

	return filter, nil
}

func splitTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
