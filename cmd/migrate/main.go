package main

import (
	"context"

	"go.uber.org/zap"

	dbadapter "github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/db"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config.LoadConfig()
	if cfg.DbDriver == "memory" {
		logger.Info("memory driver configured, nothing to migrate")
		return
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("unable to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	applied, err := dbadapter.Migrate(context.Background(), db, cfg.MigrationsFolder)
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	logger.Info("migration completed", zap.Strings("files", applied))
}
