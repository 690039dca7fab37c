package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// OpenDB connects to the database named by dsn. A postgres:// DSN gets the
// pgdriver connector, everything else is treated as a SQLite path.
func OpenDB(dsn string) (*bun.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is required", errors.CategoryBadInput)
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryOperation, "failed to open sqlite database")
	}
	return bun.NewDB(sqldb, sqlitedialect.New()), nil
}

// CreateTables bootstraps the schema. Categories go first so the products
// foreign key has something to point at.
func CreateTables(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*Category)(nil),
		(*User)(nil),
		(*Product)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return errors.Wrap(err, errors.CategoryOperation, "failed to create table")
		}
	}

	return nil
}
