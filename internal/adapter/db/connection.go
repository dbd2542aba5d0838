package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/config"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	defaultMySQLParams    = "parseTime=true&multiStatements=true&loc=Local"
	defaultPostgresParams = "sslmode=disable"
)

// ConnectDB opens the configured SQL database. The returned handle carries the
// database/sql driver name, which sqlx uses to pick the bind style.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := DSN(conf)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// DSN returns the database/sql driver name and connection string for conf.
func DSN(conf *config.Config) (string, string, error) {
	params := conf.DbParams

	switch conf.DbDriver {
	case DriverMySQL, "":
		if params == "" {
			params = defaultMySQLParams
		}
		return "mysql", fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	case DriverPostgres:
		if params == "" {
			params = defaultPostgresParams
		}
		return "pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?%s",
			conf.DbUser,
			conf.DbPassword,
			conf.DbHost,
			conf.DbPort,
			conf.DbName,
			params,
		), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", conf.DbDriver)
	}
}
