package db

import (
	"strings"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/search"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildWhere renders p as a WHERE clause over the tasks table aliased as t.
// Placeholders are '?' and must be rebound for the target driver.
func buildWhere(d dialect, p search.Predicate) (string, []any) {
	conditions := []string{"t.owner_id = ?"}
	args := []any{p.OwnerID}

	if p.Text != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(p.Text)) + "%"
		conditions = append(conditions, "(LOWER(t.title) LIKE ? OR LOWER(COALESCE(t.description, '')) LIKE ?)")
		args = append(args, pattern, pattern)
	}

	if p.Completed != nil {
		conditions = append(conditions, "t.completed = ?")
		args = append(args, *p.Completed)
	}

	if p.Priority != nil {
		conditions = append(conditions, "t.priority = ?")
		args = append(args, string(*p.Priority))
	}

	if len(p.Tags) > 0 {
		condition, tagArgs := d.anyTagCondition("t.tags", p.Tags)
		conditions = append(conditions, condition)
		args = append(args, tagArgs...)
	}

	if p.OnlyIncomplete {
		conditions = append(conditions, "t.completed = FALSE")
	}

	if p.DueBefore != nil {
		conditions = append(conditions, "t.due_date < ?")
		args = append(args, *p.DueBefore)
	}

	if p.DueFrom != nil {
		conditions = append(conditions, "t.due_date >= ?")
		args = append(args, *p.DueFrom)
	}

	if p.DueTo != nil {
		conditions = append(conditions, "t.due_date <= ?")
		args = append(args, *p.DueTo)
	}

	return strings.Join(conditions, " AND "), args
}
