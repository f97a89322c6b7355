package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
)

// UserUseCase implements the user business logic
type UserUseCase struct {
	uow          persistence.UnitOfWork
	hasher       coreport.PasswordHasher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new user use case instance
func NewUserUseCase(
	uow persistence.UnitOfWork,
	hasher coreport.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	return &UserUseCase{
		uow:          uow,
		hasher:       hasher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// RegisterUser hashes the password and stores a new user.
// The email check and the insert share one transaction.
func (u *UserUseCase) RegisterUser(ctx context.Context, email, password string) (*entity.User, error) {
	normalized, err := entity.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(password) == "" {
		return nil, errs.ErrInvalidPassword
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		u.logger.Error("Failed to hash password", map[string]any{
			"email": normalized,
			"error": err.Error(),
		})
		return nil, err
	}

	user, err := entity.NewUser(normalized, hash, u.timeProvider)
	if err != nil {
		return nil, err
	}

	err = u.uow.Execute(ctx, func(txCtx context.Context) error {
		repo := u.uow.UserRepository(txCtx)

		_, lookupErr := repo.GetByEmail(txCtx, normalized)
		switch {
		case lookupErr == nil:
			return errs.ErrDuplicateUser
		case !errors.Is(lookupErr, errs.ErrUserNotFound):
			return lookupErr
		}

		return repo.Create(txCtx, user)
	})
	if err != nil {
		u.logger.Error("Failed to register user", map[string]any{
			"email": normalized,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"email":  user.Email,
	})

	return user, nil
}
