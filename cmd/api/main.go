package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/db"
	httpadapter "github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/handlers"
	httpmiddleware "github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/middleware"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/memory"
	appservice "github.com/Ajith163/todo-Auth-system-sub000/internal/app/service"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/config"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/ports"
	"github.com/Ajith163/todo-Auth-system-sub000/pkg/translator"
)

type repositories struct {
	tasks    ports.TaskRepository
	users    ports.UserRepository
	sessions ports.SessionRepository
	pinger   handlers.Pinger
}

func main() {
	// APP_ENV is read straight from the environment so config warnings are logged.
	logger, err := newLogger(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	cfg := config.LoadConfig()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	repos, closeRepos := openRepositories(cfg, logger)
	defer closeRepos()

	taskService := appservice.NewTaskService(repos.tasks, nil)
	authService := appservice.NewAuthService(repos.users, repos.sessions, appservice.AuthConfig{
		SessionTTL:  cfg.SessionTTL,
		AdminEmails: cfg.AdminEmails,
	}, nil)
	adminService := appservice.NewAdminService(repos.users)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(repos.pinger, cfg.DbDriver),
		Auth:   handlers.NewAuthHandler(authService),
		Tasks:  handlers.NewTaskHandler(taskService, cfg.StrictSearchFilters),
		Admin:  handlers.NewAdminHandler(adminService),
	}, authService)

	addr := ":" + cfg.AppPort
	logger.Info("starting server",
		zap.String("addr", addr),
		zap.String("driver", cfg.DbDriver),
		zap.Bool("strict_search_filters", cfg.StrictSearchFilters),
	)
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func openRepositories(cfg *config.Config, logger *zap.Logger) (repositories, func()) {
	if cfg.DbDriver == "memory" {
		logger.Warn("using in-memory storage, data is lost on restart")
		return repositories{
			tasks:    memory.NewTaskRepository(nil),
			users:    memory.NewUserRepository(nil),
			sessions: memory.NewSessionRepository(),
		}, func() {}
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}

	return repositories{
			tasks:    dbadapter.NewTaskRepository(db),
			users:    dbadapter.NewUserRepository(db),
			sessions: dbadapter.NewSessionRepository(db),
			pinger:   db,
		}, func() {
			if err := db.Close(); err != nil {
				logger.Warn("failed to close database connection", zap.Error(err))
			}
		}
}
