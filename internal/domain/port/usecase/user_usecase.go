package usecase

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
)

// UserUseCase defines user account operations
type UserUseCase interface {
	// RegisterUser hashes the password and stores a new user
	RegisterUser(ctx context.Context, email, password string) (*entity.User, error)
}
