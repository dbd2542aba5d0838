package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/search"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	now            func() time.Time
}

// NewTaskService wires the repository; now defaults to time.Now and drives
// due-date bucket resolution.
func NewTaskService(taskRepository ports.TaskRepository, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{taskRepository: taskRepository, now: now}
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Priority == "" {
		input.Priority = domain.PriorityMedium
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, ownerID, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	return s.taskRepository.Update(ctx, ownerID, taskID, input)
}

func (s *TaskService) ToggleTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.ToggleCompleted(ctx, ownerID, taskID)
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	return s.taskRepository.Delete(ctx, ownerID, taskID)
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64) ([]domain.Task, error) {
	result, err := s.SearchTasks(ctx, domain.SearchFilter{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return result.Tasks, nil
}

func (s *TaskService) SearchTasks(ctx context.Context, filter domain.SearchFilter) (ports.SearchResult, error) {
	predicate := search.Build(filter, s.now())

	tasks, err := s.taskRepository.Find(ctx, predicate)
	if err != nil {
		return ports.SearchResult{}, fmt.Errorf("find tasks for owner %d: %w", filter.OwnerID, err)
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	return ports.SearchResult{
		Tasks:      tasks,
		TotalCount: len(tasks),
		Query:      predicate.Text,
		Filters:    predicate.Applied(),
	}, nil
}

var _ ports.TaskService = (*TaskService)(nil)
