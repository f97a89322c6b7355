package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/repository"
)

func TestUserRepository(t *testing.T) {
	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	repo := repository.NewUserRepository(testDB.Manager.DB(), log)
	ctx := context.Background()

	user, err := entity.NewUser("ann@example.com", "$2a$10$hash", testDB.TimeProvider)
	require.NoError(t, err)

	t.Run("should create and find by email", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, user))
		assert.NotZero(t, user.ID)

		found, err := repo.GetByEmail(ctx, "ann@example.com")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "$2a$10$hash", found.PasswordHash)
	})

	t.Run("should reject a duplicate email", func(t *testing.T) {
		dup, err := entity.NewUser("ann@example.com", "other", testDB.TimeProvider)
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateUser)
	})

	t.Run("should report a missing user", func(t *testing.T) {
		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
