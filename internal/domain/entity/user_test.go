package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/receipt-analyzer/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  Alice@Example.COM ", "$2a$10$hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(0), user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "$2a$10$hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid email", func(t *testing.T) {
		testCases := []string{
			"",
			"   ",
			"no-at-sign",
			"@example.com",
			"alice@",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				user, err := NewUser(tc, "$2a$10$hash", mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidEmail)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("Empty password hash", func(t *testing.T) {
		user, err := NewUser("bob@example.com", "", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidPassword)
		assert.Nil(t, user)
	})
}
