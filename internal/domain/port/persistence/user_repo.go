package persistence

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// Create inserts a new user and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// GetByEmail retrieves a user by email address
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
