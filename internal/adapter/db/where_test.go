package db

import (
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/search"
)

var now = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func TestBuildWhere_OwnerOnly(t *testing.T) {
	where, args := buildWhere(dialect{}, search.Build(domain.SearchFilter{OwnerID: 7}, now))

	assert.Equal(t, "t.owner_id = ?", where)
	assert.Equal(t, []any{uint64(7)}, args)
}

func TestBuildWhere_TextIsEscapedAndLowered(t *testing.T) {
	where, args := buildWhere(dialect{}, search.Build(domain.SearchFilter{OwnerID: 1, Text: "100%_Done"}, now))

	assert.Equal(t, "t.owner_id = ? AND (LOWER(t.title) LIKE ? OR LOWER(COALESCE(t.description, '')) LIKE ?)", where)
	require.Len(t, args, 3)
	assert.Equal(t, `%100\%\_done%`, args[1])
	assert.Equal(t, args[1], args[2])
}

func TestBuildWhere_MySQLTagsAreOred(t *testing.T) {
	where, args := buildWhere(dialect{}, search.Build(domain.SearchFilter{
		OwnerID:  1,
		Priority: ptr(domain.PriorityHigh),
		Tags:     []string{"work", "home"},
	}, now))

	assert.Equal(t,
		"t.owner_id = ? AND t.priority = ? AND (JSON_CONTAINS(t.tags, JSON_QUOTE(?)) OR JSON_CONTAINS(t.tags, JSON_QUOTE(?)))",
		where,
	)
	assert.Equal(t, []any{uint64(1), "high", "work", "home"}, args)
}

func TestBuildWhere_PostgresTagsUseOverlap(t *testing.T) {
	where, args := buildWhere(dialect{postgres: true}, search.Build(domain.SearchFilter{
		OwnerID: 1,
		Tags:    []string{"work", "home"},
	}, now))

	assert.Equal(t, "t.owner_id = ? AND t.tags && ?::text[]", where)
	assert.Equal(t, []any{uint64(1), []string{"work", "home"}}, args)
}

func TestBuildWhere_Overdue(t *testing.T) {
	where, args := buildWhere(dialect{}, search.Build(domain.SearchFilter{
		OwnerID: 1,
		DueDate: ptr(domain.DueOverdue),
	}, now))

	assert.Equal(t, "t.owner_id = ? AND t.completed = FALSE AND t.due_date < ?", where)
	assert.Equal(t, []any{uint64(1), now}, args)
}

func TestBuildWhere_ThisWeekWithCompleted(t *testing.T) {
	where, args := buildWhere(dialect{}, search.Build(domain.SearchFilter{
		OwnerID:   1,
		Completed: ptr(true),
		DueDate:   ptr(domain.DueThisWeek),
	}, now))

	startOfToday := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "t.owner_id = ? AND t.completed = ? AND t.due_date >= ? AND t.due_date <= ?", where)
	assert.Equal(t, []any{uint64(1), true, startOfToday, startOfToday.Add(7 * 24 * time.Hour)}, args)
}

func TestDialectFor(t *testing.T) {
	assert.True(t, dialectFor(sqlx.NewDb(nil, "pgx")).postgres)
	assert.False(t, dialectFor(sqlx.NewDb(nil, "mysql")).postgres)
}

func TestDialect_PostgresRebindsPlaceholders(t *testing.T) {
	db := sqlx.NewDb(nil, "pgx")
	where, _ := buildWhere(dialectFor(db), search.Build(domain.SearchFilter{OwnerID: 1, Text: "x"}, now))

	assert.Equal(t,
		"t.owner_id = $1 AND (LOWER(t.title) LIKE $2 OR LOWER(COALESCE(t.description, '')) LIKE $3)",
		db.Rebind(where),
	)
}

func TestDialect_TagsValue(t *testing.T) {
	value, err := dialect{}.tagsValue(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", value)

	value, err = dialect{}.tagsValue([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, value)

	value, err = dialect{postgres: true}.tagsValue([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, value)
}

func TestTagList_Scan(t *testing.T) {
	cases := []struct {
		name string
		src  any
		want tagList
	}{
		{"nil", nil, tagList{}},
		{"mysql json", []byte(`["work","home"]`), tagList{"work", "home"}},
		{"postgres json text", `["a b"]`, tagList{"a b"}},
		{"array literal", `{work,"with space"}`, tagList{"work", "with space"}},
		{"empty array literal", `{}`, tagList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got tagList
			require.NoError(t, got.Scan(tc.src))
			assert.Equal(t, tc.want, got)
		})
	}

	var bad tagList
	assert.Error(t, bad.Scan(42))
}
