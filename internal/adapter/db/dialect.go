package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	mysqlDuplicateEntry    = 1062
	postgresUniqueViolated = "23505"
)

// dialect hides the few places where MySQL and Postgres disagree:
// tag storage, tag matching and reading back generated ids.
type dialect struct {
	postgres bool
}

func dialectFor(db *sqlx.DB) dialect {
	return dialect{postgres: db.DriverName() == "pgx" || db.DriverName() == "postgres"}
}

// tagsValue encodes tags for the tags column: JSON on MySQL, text[] on Postgres.
func (d dialect) tagsValue(tags []string) (any, error) {
	if tags == nil {
		tags = []string{}
	}
	if d.postgres {
		return tags, nil
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return string(encoded), nil
}

// anyTagCondition renders an OR-group matching tasks carrying at least one of tags.
func (d dialect) anyTagCondition(column string, tags []string) (string, []any) {
	if d.postgres {
		return column + " && ?::text[]", []any{tags}
	}

	parts := make([]string, 0, len(tags))
	args := make([]any, 0, len(tags))
	for _, tag := range tags {
		parts = append(parts, "JSON_CONTAINS("+column+", JSON_QUOTE(?))")
		args = append(args, tag)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// tagsSelect is the select expression reading column back as JSON text.
func (d dialect) tagsSelect(column string) string {
	if d.postgres {
		return "array_to_json(" + column + ")"
	}
	return column
}

// insert runs query and returns the generated id. query must not carry a
// RETURNING clause; it is appended on Postgres.
func (d dialect) insert(ctx context.Context, db *sqlx.DB, query string, args ...any) (uint64, error) {
	if d.postgres {
		var id uint64
		err := db.QueryRowxContext(ctx, db.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolated
	}
	return false
}

func affectedOne(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n > 0, nil
}

// tagList reads the tags column back from either JSON (MySQL) or a text[] literal (Postgres).
type tagList []string

func (t *tagList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = tagList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported tags column type %T", src)
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var tags []string
		if err := json.Unmarshal([]byte(trimmed), &tags); err != nil {
			return fmt.Errorf("decode tags: %w", err)
		}
		*t = tags
		return nil
	}

	var arr pq.StringArray
	if err := arr.Scan([]byte(trimmed)); err != nil {
		return fmt.Errorf("decode tags: %w", err)
	}
	if arr == nil {
		arr = pq.StringArray{}
	}
	*t = tagList(arr)
	return nil
}
