package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/handlers"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/middleware"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Tasks  *handlers.TaskHandler
	Admin  *handlers.AdminHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authService ports.AuthService) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/signup", h.Auth.Signup)
		api.POST("/auth/login", h.Auth.Login)
	}

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(authService))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)

		authed.GET("/todos", h.Tasks.ListTasks)
		authed.POST("/todos", h.Tasks.CreateTask)
		authed.GET("/todos/search", h.Tasks.SearchTasks)
		authed.GET("/todos/:id", h.Tasks.GetTask)
		authed.PATCH("/todos/:id", h.Tasks.UpdateTask)
		authed.PATCH("/todos/:id/toggle", h.Tasks.ToggleTask)
		authed.DELETE("/todos/:id", h.Tasks.DeleteTask)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.POST("/users/:id/approve", h.Admin.ApproveUser)
		admin.POST("/users/:id/reject", h.Admin.RejectUser)
	}
}
