package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/dto"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/mapper"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/middleware"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/validation"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/pkg/apierrors"
)

type TaskHandler struct {
	taskService         ports.TaskService
	strictSearchFilters bool
}

// NewTaskHandler builds the task endpoints. With strictSearchFilters set,
// unknown completed/priority/dueDate search values are answered with 400
// instead of being ignored.
func NewTaskHandler(taskService ports.TaskService, strictSearchFilters bool) *TaskHandler {
	return &TaskHandler{taskService: taskService, strictSearchFilters: strictSearchFilters}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), user.ID)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("owner_id", user.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListTasks, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) SearchTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}

	filter, err := validation.BuildSearchFilter(user.ID, c.Request.URL.Query(), h.strictSearchFilters)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSearchFilter, lang)
		return
	}

	result, err := h.taskService.SearchTasks(c.Request.Context(), filter)
	if err != nil {
		zap.L().Error("failed to search tasks",
			zap.String("request_id", middleware.RequestID(c)),
			zap.Uint64("owner_id", user.ID),
			zap.Error(err),
		)
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailSearchTasks, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSearchResponse(result))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), user.ID, taskID)
	if err != nil {
		respondTaskError(c, err, apierrors.MsgFailGetTask, lang, user.ID, taskID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}

	var req dto.CreateTaskRequest
	raw, ok := bindTaskPayload(c, &req, lang)
	if !ok {
		return
	}

	input, err := validation.BuildCreateTaskInput(user.ID, req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Uint64("owner_id", user.ID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, ok := bindTaskPayload(c, &req, lang)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), user.ID, taskID, input)
	if err != nil {
		respondTaskError(c, err, apierrors.MsgFailUpdateTask, lang, user.ID, taskID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), user.ID, taskID)
	if err != nil {
		respondTaskError(c, err, apierrors.MsgFailUpdateTask, lang, user.ID, taskID)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	user, ok := currentUser(c, lang)
	if !ok {
		return
	}
	taskID, ok := parseID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), user.ID, taskID); err != nil {
		respondTaskError(c, err, apierrors.MsgFailDeleteTask, lang, user.ID, taskID)
		return
	}

	c.Status(http.StatusNoContent)
}

// bindTaskPayload decodes the body twice: into req for typed values and into a
// raw map so validation can tell an explicit null from an absent field.
func bindTaskPayload(c *gin.Context, req any, lang string) (map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return nil, false
	}

	if err := json.Unmarshal(body, req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return nil, false
	}

	if err := binding.Validator.ValidateStruct(req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang)
		return nil, false
	}

	return raw, true
}

func respondTaskError(c *gin.Context, err error, failMsg, lang string, ownerID, taskID uint64) {
	if errors.Is(err, domain.ErrTaskNotFound) {
		respondError(c, http.StatusNotFound, apierrors.MsgTaskNotFound, lang)
		return
	}

	zap.L().Error("task operation failed",
		zap.String("request_id", middleware.RequestID(c)),
		zap.String("operation", failMsg),
		zap.Uint64("owner_id", ownerID),
		zap.Uint64("task_id", taskID),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, failMsg, lang)
}

func parseID(c *gin.Context, lang string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidID, lang)
		return 0, false
	}
	return id, true
}

func currentUser(c *gin.Context, lang string) (domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang)
		return domain.User{}, false
	}
	return user, true
}

func respondError(c *gin.Context, code int, msgKey, lang string) {
	c.JSON(code, apierrors.CreateError(code, msgKey, lang))
}
