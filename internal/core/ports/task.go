package ports

import (
	"context"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/search"
)

// TaskRepository is owner-scoped: a task that belongs to another owner is
// reported as domain.ErrTaskNotFound.
type TaskRepository interface {
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	Update(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleCompleted(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	Delete(ctx context.Context, ownerID, taskID uint64) error
	// Find returns the tasks matching predicate, newest first.
	Find(ctx context.Context, predicate search.Predicate) ([]domain.Task, error)
}

type SearchResult struct {
	Tasks      []domain.Task
	TotalCount int
	Query      string
	Filters    search.AppliedFilters
}

type TaskService interface {
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uint64) error
	ListTasks(ctx context.Context, ownerID uint64) ([]domain.Task, error)
	SearchTasks(ctx context.Context, filter domain.SearchFilter) (SearchResult, error)
}
