package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"agora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Picture:  gofakeit.ImageURL(128, 128),
	}
	require.NoError(t, NewUserRepository(testDB).Create(context.Background(), user))
	return user
}

func TestUserRepositoryCreate(t *testing.T) {
	truncateTables(t)
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	t.Run("assigns an ID", func(t *testing.T) {
		user := &models.User{Username: "first_user"}
		require.NoError(t, repo.Create(ctx, user))
		assert.NotZero(t, user.ID)
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Username: "first_user"})
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})
}

func TestUserRepositoryGetByID(t *testing.T) {
	truncateTables(t)
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	user := createTestUser(t, "lookup_me")

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "lookup_me", got.Username)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 999999)
		require.Error(t, err)

		var appErr *models.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestUserRepositoryGetByUsername(t *testing.T) {
	truncateTables(t)
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	createTestUser(t, "by_name")

	got, err := repo.GetByUsername(ctx, "by_name")
	require.NoError(t, err)
	assert.Equal(t, "by_name", got.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserRepositoryGetByIDs(t *testing.T) {
	truncateTables(t)
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	alice := createTestUser(t, "alice")
	bob := createTestUser(t, "bob")

	got, err := repo.GetByIDs(ctx, []uint{alice.ID, bob.ID, 424242})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[alice.ID].Username)
	assert.Equal(t, "bob", got[bob.ID].Username)
	assert.NotContains(t, got, uint(424242))

	empty, err := repo.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUserRepositoryList(t *testing.T) {
	truncateTables(t)
	repo := NewUserRepository(testDB)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		createTestUser(t, fmt.Sprintf("user_%d", i))
	}

	page, err := repo.List(ctx, 3, 0)
	require.NoError(t, err)
	assert.Len(t, page, 3)

	rest, err := repo.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, rest, 2)
}
