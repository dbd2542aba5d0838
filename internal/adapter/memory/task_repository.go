// Package memory keeps tasks, users and sessions in process memory.
// It is used for local runs without a database and as the store behind service tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/search"
)

type TaskRepository struct {
	mu     sync.RWMutex
	nextID uint64
	tasks  map[uint64]domain.Task
	now    func() time.Time
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(now func() time.Time) *TaskRepository {
	if now == nil {
		now = time.Now
	}
	return &TaskRepository{tasks: make(map[uint64]domain.Task), now: now}
}

func (r *TaskRepository) Create(_ context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := r.now()
	task := domain.Task{
		ID:          r.nextID,
		OwnerID:     input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Tags:        append([]string{}, input.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.tasks[task.ID] = task

	return cloneTask(task), nil
}

func (r *TaskRepository) GetByID(_ context.Context, ownerID, taskID uint64) (domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *TaskRepository) Update(_ context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task = input.Apply(task)
	task.UpdatedAt = r.now()
	r.tasks[taskID] = task

	return cloneTask(task), nil
}

func (r *TaskRepository) ToggleCompleted(_ context.Context, ownerID, taskID uint64) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	task.Completed = !task.Completed
	task.UpdatedAt = r.now()
	r.tasks[taskID] = task

	return cloneTask(task), nil
}

func (r *TaskRepository) Delete(_ context.Context, ownerID, taskID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[taskID]
	if !ok || task.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, taskID)
	return nil
}

func (r *TaskRepository) Find(_ context.Context, predicate search.Predicate) ([]domain.Task, error) {
	r.mu.RLock()
	owned := make([]domain.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if task.OwnerID == predicate.OwnerID {
			owned = append(owned, cloneTask(task))
		}
	}
	r.mu.RUnlock()

	return predicate.Filter(owned), nil
}

func cloneTask(task domain.Task) domain.Task {
	task.Tags = append([]string{}, task.Tags...)
	if task.Description != nil {
		value := *task.Description
		task.Description = &value
	}
	if task.DueDate != nil {
		value := *task.DueDate
		task.DueDate = &value
	}
	return task
}
