package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// MigrationDir returns the folder holding the migrations for db's driver.
func MigrationDir(db *sqlx.DB, folder string) string {
	if dialectFor(db).postgres {
		return filepath.Join(folder, DriverPostgres)
	}
	return filepath.Join(folder, DriverMySQL)
}

func gooseDialect(db *sqlx.DB) goose.Dialect {
	if dialectFor(db).postgres {
		return goose.DialectPostgres
	}
	return goose.DialectMySQL
}

// Migrate applies the pending goose migrations found in folder/<driver> and
// returns the files applied by this run.
func Migrate(ctx context.Context, db *sqlx.DB, folder string) ([]string, error) {
	dir := MigrationDir(db, folder)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("migrations folder: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect(db), db.DB, os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("load migrations from %s: %w", dir, err)
	}

	results, err := provider.Up(ctx)
	applied := make([]string, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			continue
		}
		file := filepath.Base(result.Source.Path)
		zap.L().Info("applied migration", zap.String("file", file), zap.Duration("duration", result.Duration))
		applied = append(applied, file)
	}
	if err != nil {
		return applied, fmt.Errorf("apply migrations: %w", err)
	}

	return applied, nil
}
