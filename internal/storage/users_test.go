package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/hera-migrate/internal/common"
	"github.com/Veraticus/hera-migrate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStorage_CreateAndGetUser(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := &model.User{Username: "admin"}
	require.NoError(t, user.SetPassword("admin123"))

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateUser(ctx, user))
	require.NoError(t, tx.Commit())

	assert.NotZero(t, user.ID)

	got, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
	assert.True(t, got.CheckPassword("admin123"))
	assert.False(t, got.CheckPassword("wrong"))
}

func TestSQLiteStorage_GetUserNotFound(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.GetUserByUsername(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestSQLiteStorage_DuplicateUsernameRejected(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := &model.User{Username: "admin"}
	require.NoError(t, first.SetPassword("admin123"))

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.CreateUser(ctx, first))
	require.NoError(t, tx.Commit())

	second := &model.User{Username: "admin"}
	require.NoError(t, second.SetPassword("other"))

	tx, err = store.BeginTx(ctx)
	require.NoError(t, err)
	err = tx.CreateUser(ctx, second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDuplicateEntry))
	require.NoError(t, tx.Rollback())
}

func TestSQLiteStorage_CreateUserValidation(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	err = tx.CreateUser(ctx, &model.User{Username: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUser))

	err = tx.CreateUser(ctx, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNilParameter))
}
