package entity

import (
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
)

// User represents an account that may own receipts
type User struct {
	ID           uint64    // Unique identifier for the user
	Email        string    // Unique, stored lower-cased
	PasswordHash string    // bcrypt hash, never the plain password
	CreatedAt    time.Time // When the user was created
}

// NewUser creates a new user with the given email and an already hashed password
func NewUser(email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidPassword
	}

	return &User{
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    timeProvider.Now(),
	}, nil
}

// NormalizeEmail trims and lower-cases an email address and checks its basic shape
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", errs.ErrInvalidEmail
	}
	return email, nil
}
