package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/pkg/apierrors"
)

const (
	userKey  = "user"
	tokenKey = "token"
)

// RequireAuth resolves the bearer token to an approved user and stores it on the context.
func RequireAuth(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abort(c, http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			abort(c, http.StatusUnauthorized, apierrors.MsgUnauthenticated, lang)
			return
		case errors.Is(err, domain.ErrAccountPending):
			abort(c, http.StatusForbidden, apierrors.MsgAccountPending, lang)
			return
		case errors.Is(err, domain.ErrAccountRejected):
			abort(c, http.StatusForbidden, apierrors.MsgAccountRejected, lang)
			return
		default:
			zap.L().Error("failed to authenticate request", zap.Error(err))
			abort(c, http.StatusInternalServerError, apierrors.MsgFailAuthenticate, lang)
			return
		}

		c.Set(userKey, user)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, http.StatusUnauthorized, apierrors.MsgUnauthenticated, GetLang(c))
			return
		}
		if !user.IsAdmin {
			abort(c, http.StatusForbidden, apierrors.MsgForbidden, GetLang(c))
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (domain.User, bool) {
	value, exists := c.Get(userKey)
	if !exists {
		return domain.User{}, false
	}
	user, ok := value.(domain.User)
	return user, ok
}

func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenKey)
}

func bearerToken(header string) string {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func abort(c *gin.Context, code int, msgKey, lang string) {
	c.AbortWithStatusJSON(code, apierrors.CreateError(code, msgKey, lang))
}
