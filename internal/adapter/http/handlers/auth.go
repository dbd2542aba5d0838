package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/dto"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/mapper"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/middleware"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidSignupPayload, lang)
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), ports.SignupInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			respondError(c, http.StatusConflict, apierrors.MsgEmailTaken, lang)
			return
		}
		zap.L().Error("failed to sign up", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailSignup, lang)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToUserItem(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, apierrors.MsgInvalidLoginPayload, lang)
		return
	}

	session, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, mapper.ToLoginResponse(session, user))
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang)
	case errors.Is(err, domain.ErrAccountPending):
		respondError(c, http.StatusForbidden, apierrors.MsgAccountPending, lang)
	case errors.Is(err, domain.ErrAccountRejected):
		respondError(c, http.StatusForbidden, apierrors.MsgAccountRejected, lang)
	default:
		zap.L().Error("failed to log in", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailLogin, lang)
	}
}

func (h *AuthHandler) Logout(c *gin.Context) {
	lang := middleware.GetLang(c)

	err := h.authService.Logout(c.Request.Context(), middleware.CurrentToken(c))
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		zap.L().Error("failed to log out", zap.Error(err))
		respondError(c, http.StatusInternalServerError, apierrors.MsgFailLogout, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentUser(c, middleware.GetLang(c))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, mapper.ToUserItem(user))
}
