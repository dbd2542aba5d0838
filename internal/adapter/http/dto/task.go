package dto

type TaskItem struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Completed   bool     `json:"completed"`
	DueDate     *string  `json:"dueDate,omitempty"`
	Priority    string   `json:"priority"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string  `json:"dueDate"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=20"`
}

type UpdateTaskRequest struct {
	Title       *string  `json:"title" binding:"omitempty,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=65535"`
	Completed   *bool    `json:"completed"`
	DueDate     *string  `json:"dueDate"`
	Priority    *string  `json:"priority" binding:"omitempty,oneof=low medium high"`
	Tags        []string `json:"tags" binding:"omitempty,max=20,dive,min=1,max=20"`
}

type SearchFilters struct {
	Completed *bool    `json:"completed,omitempty"`
	Priority  *string  `json:"priority,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	DueDate   *string  `json:"dueDate,omitempty"`
}

type SearchResponse struct {
	Todos       []TaskItem    `json:"todos"`
	TotalCount  int           `json:"totalCount"`
	SearchQuery string        `json:"searchQuery"`
	Filters     SearchFilters `json:"filters"`
}
