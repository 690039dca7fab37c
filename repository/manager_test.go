package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-shop/auth"
	"github.com/goliatone/go-shop/repository"
)

func TestManager_Validate(t *testing.T) {
	db := newTestDB(t)
	repos := repository.NewManager(db)

	require.NoError(t, repos.Validate())
	assert.NotNil(t, repos.Users())
	assert.NotNil(t, repos.Categories())
	assert.NotNil(t, repos.Products())
}

func TestManager_RunInTxRollsBack(t *testing.T) {
	db := newTestDB(t)
	repos := repository.NewManager(db)
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	err = repos.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := repos.Users().RegisterTx(ctx, tx, &repository.User{
			Name:         "Rolled Back",
			Email:        "rollback@example.com",
			PasswordHash: hash,
			Active:       true,
		})
		require.NoError(t, err)
		return assert.AnError
	})
	require.Error(t, err)

	_, err = repos.Users().FindByEmail(ctx, "rollback@example.com")
	assert.Error(t, err)
}

func TestManager_RunInTxCommits(t *testing.T) {
	db := newTestDB(t)
	repos := repository.NewManager(db)
	ctx := context.Background()

	err := repos.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := repos.Users().RegisterTx(ctx, tx, &repository.User{
			Name:         "Committed",
			Email:        "committed@example.com",
			PasswordHash: "hash",
			Active:       true,
		})
		return err
	})
	require.NoError(t, err)

	user, err := repos.Users().FindByEmail(ctx, "committed@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Committed", user.Name)
}

func TestManager_RunInTxHonorsCancelledContext(t *testing.T) {
	db := newTestDB(t)
	repos := repository.NewManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repos.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		t.Fatal("transaction body should not run")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
