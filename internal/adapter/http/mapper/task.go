package mapper

import (
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/dto"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		Tags:      append([]string{}, task.Tags...),
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if task.DueDate != nil {
		value := task.DueDate.Format(time.RFC3339)
		item.DueDate = &value
	}

	return item
}

func ToSearchResponse(result ports.SearchResult) dto.SearchResponse {
	filters := dto.SearchFilters{
		Completed: result.Filters.Completed,
		Tags:      result.Filters.Tags,
	}

	if result.Filters.Priority != nil {
		value := string(*result.Filters.Priority)
		filters.Priority = &value
	}

	if result.Filters.DueDate != nil {
		value := string(*result.Filters.DueDate)
		filters.DueDate = &value
	}

	return dto.SearchResponse{
		Todos:       ToTaskItems(result.Tasks),
		TotalCount:  result.TotalCount,
		SearchQuery: result.Query,
		Filters:     filters,
	}
}
