package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/mapper"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/middleware"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/pkg/apierrors"
)

type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers lists accounts by ?status=, pending by default.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	lang := middleware.GetLang(c)

	status, ok := domain.ParseUserStatus(c.DefaultQuery("status", string(domain.UserStatusPending)))
	if !ok {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidUserStatus, lang)
		return
	}

	users, err := h.adminService.ListUsers(c.Request.Context(), status)
	if err != nil {
		zap.L().Error("failed to list users", zap.String("status", string(status)), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailListUsers, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItems(users))
}

func (h *AdminHandler) ApproveUser(c *gin.Context) {
	h.setStatus(c, h.adminService.ApproveUser)
}

func (h *AdminHandler) RejectUser(c *gin.Context) {
	admin, ok := currentUser(c, middleware.GetLang(c))
	if !ok {
		return
	}
	h.setStatus(c, func(ctx context.Context, userID uint64) (domain.User, error) {
		return h.adminService.RejectUser(ctx, admin.ID, userID)
	})
}

func (h *AdminHandler) setStatus(c *gin.Context, apply func(ctx context.Context, userID uint64) (domain.User, error)) {
	lang := middleware.GetLang(c)
	userID, ok := parseID(c, lang)
	if !ok {
		return
	}

	user, err := apply(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			respondError(c, http.StatusNotFound, apierrors.MsgUserNotFound, lang)
			return
		case errors.Is(err, domain.ErrSelfReject):
			respondError(c, http.StatusConflict, apierrors.MsgSelfReject, lang)
			return
		}
		zap.L().Error("failed to update user status", zap.Uint64("user_id", userID), zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailUpdateUser, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
