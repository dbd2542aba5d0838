package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/sqlparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationDir_FollowsDriver(t *testing.T) {
	mysqlDB := sqlx.NewDb(nil, "mysql")
	pgDB := sqlx.NewDb(nil, "pgx")

	assert.Equal(t, filepath.Join("db", "migrations", "mysql"), MigrationDir(mysqlDB, filepath.Join("db", "migrations")))
	assert.Equal(t, filepath.Join("db", "migrations", "postgres"), MigrationDir(pgDB, filepath.Join("db", "migrations")))
	assert.Equal(t, goose.DialectMySQL, gooseDialect(mysqlDB))
	assert.Equal(t, goose.DialectPostgres, gooseDialect(pgDB))
}

func TestShippedMigrationsParse(t *testing.T) {
	for _, driver := range []string{DriverMySQL, DriverPostgres} {
		dir := filepath.Join("..", "..", "..", "db", "migrations", driver)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err, driver)
		require.NotEmpty(t, entries, driver)

		for _, entry := range entries {
			f, err := os.Open(filepath.Join(dir, entry.Name()))
			require.NoError(t, err)

			up, useTx, err := sqlparser.ParseSQLMigration(f, sqlparser.DirectionUp, false)
			require.NoError(t, err, entry.Name())
			assert.NotEmpty(t, up, entry.Name())
			assert.True(t, useTx, entry.Name())

			_, err = f.Seek(0, 0)
			require.NoError(t, err)
			down, _, err := sqlparser.ParseSQLMigration(f, sqlparser.DirectionDown, false)
			require.NoError(t, err, entry.Name())
			assert.Len(t, down, 1, entry.Name())

			require.NoError(t, f.Close())
		}
	}
}

func TestMigrate_MissingFolder(t *testing.T) {
	_, err := Migrate(context.Background(), sqlx.NewDb(nil, "mysql"), filepath.Join(t.TempDir(), "nope"))

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
