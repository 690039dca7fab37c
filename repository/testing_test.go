package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/goliatone/go-shop/auth"
	"github.com/goliatone/go-shop/repository"
)

// newTestDB opens an isolated in-memory database with the schema applied.
// Each test gets its own DSN so parallel tests never share state.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:test-%s?mode=memory&cache=shared", uuid.NewString())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)

	sqldb.SetMaxIdleConns(1000)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	require.NoError(t, repository.CreateTables(context.Background(), db))

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func createTestUser(t *testing.T, users repository.Users, email string, role auth.UserRole, active bool) *repository.User {
	t.Helper()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	user, err := users.Register(context.Background(), &repository.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       active,
	})
	require.NoError(t, err)
	return user
}

func createTestCategory(t *testing.T, categories repository.Categories, name string, active bool) *repository.Category {
	t.Helper()

	category, err := categories.Create(context.Background(), &repository.Category{
		ID:     uuid.New(),
		Name:   name,
		Active: active,
	})
	require.NoError(t, err)
	return category
}

func createTestProduct(t *testing.T, products repository.Products, categoryID uuid.UUID, name string, active bool, createdAt time.Time) *repository.Product {
	t.Helper()

	product, err := products.Create(context.Background(), &repository.Product{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       name,
		Price:      9.99,
		Quantity:   5,
		Active:     active,
		CreatedAt:  &createdAt,
	})
	require.NoError(t, err)
	return product
}
