package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/search"
)

const taskColumns = `
  t.id,
  t.owner_id,
  t.title,
  t.description,
  t.completed,
  t.due_date,
  t.priority,
  %s AS tags,
  t.created_at,
  t.updated_at
FROM tasks t`

type TaskRepository struct {
	db      *sqlx.DB
	dialect dialect
	now     func() time.Time
}

type taskRow struct {
	ID          uint64         `db:"id"`
	OwnerID     uint64         `db:"owner_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	DueDate     sql.NullTime   `db:"due_date"`
	Priority    string         `db:"priority"`
	Tags        tagList        `db:"tags"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db, dialect: dialectFor(db), now: time.Now}
}

func (r *TaskRepository) selectTasks() string {
	return "SELECT" + fmt.Sprintf(taskColumns, r.dialect.tagsSelect("t.tags"))
}

func (r *TaskRepository) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	tags, err := r.dialect.tagsValue(input.Tags)
	if err != nil {
		return domain.Task{}, fmt.Errorf("encode tags: %w", err)
	}

	now := r.now()
	id, err := r.dialect.insert(ctx, r.db, `
INSERT INTO tasks (owner_id, title, description, completed, due_date, priority, tags, created_at, updated_at)
VALUES (?, ?, ?, FALSE, ?, ?, ?, ?, ?)`,
		input.OwnerID,
		input.Title,
		nullString(input.Description),
		nullTime(input.DueDate),
		string(input.Priority),
		tags,
		now,
		now,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return r.GetByID(ctx, input.OwnerID, id)
}

func (r *TaskRepository) GetByID(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return r.getByID(ctx, r.db, ownerID, taskID, "")
}

func (r *TaskRepository) getByID(ctx context.Context, q sqlx.QueryerContext, ownerID, taskID uint64, suffix string) (domain.Task, error) {
	var row taskRow
	query := r.selectTasks() + " WHERE t.id = ? AND t.owner_id = ?" + suffix
	if err := sqlx.GetContext(ctx, q, &row, r.db.Rebind(query), taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Update(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Task{}, fmt.Errorf("begin update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	current, err := r.getByID(ctx, tx, ownerID, taskID, " FOR UPDATE")
	if err != nil {
		return domain.Task{}, err
	}

	task := input.Apply(current)
	task.UpdatedAt = r.now()

	tags, err := r.dialect.tagsValue(task.Tags)
	if err != nil {
		return domain.Task{}, fmt.Errorf("encode tags: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`
UPDATE tasks
SET title = ?, description = ?, completed = ?, due_date = ?, priority = ?, tags = ?, updated_at = ?
WHERE id = ? AND owner_id = ?`),
		task.Title,
		nullString(task.Description),
		task.Completed,
		nullTime(task.DueDate),
		string(task.Priority),
		tags,
		task.UpdatedAt,
		taskID,
		ownerID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Task{}, fmt.Errorf("commit update: %w", err)
	}

	return r.GetByID(ctx, ownerID, taskID)
}

func (r *TaskRepository) ToggleCompleted(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(`
UPDATE tasks SET completed = NOT completed, updated_at = ?
WHERE id = ? AND owner_id = ?`),
		r.now(),
		taskID,
		ownerID,
	)
	if err != nil {
		return domain.Task{}, fmt.Errorf("toggle task: %w", err)
	}

	ok, err := affectedOne(result)
	if err != nil {
		return domain.Task{}, err
	}
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	return r.GetByID(ctx, ownerID, taskID)
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tasks WHERE id = ? AND owner_id = ?"), taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	ok, err := affectedOne(result)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Find(ctx context.Context, predicate search.Predicate) ([]domain.Task, error) {
	where, args := buildWhere(r.dialect, predicate)
	query := r.selectTasks() + " WHERE " + where + " ORDER BY t.created_at DESC, t.id DESC"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		Title:     row.Title,
		Completed: row.Completed,
		Priority:  domain.Priority(row.Priority),
		Tags:      []string(row.Tags),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if task.Tags == nil {
		task.Tags = []string{}
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
