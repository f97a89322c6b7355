package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
)

func TestErrorMapper_MapError(t *testing.T) {
	m := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"sqlite locked", errors.New("database is locked"), domainErr.ErrDatabaseConnection},
		{"unique", errors.New("UNIQUE constraint failed: users.email"), domainErr.ErrDuplicateUser},
		{"not null", errors.New("NOT NULL constraint failed: receipts.status"), domainErr.ErrConstraintViolation},
		{"refused", errors.New("dial tcp: connection refused"), domainErr.ErrDatabaseConnection},
		{"deadline", errors.New("context deadline exceeded"), domainErr.ErrDatabaseConnection},
		{"unknown", errors.New("near \"SELEC\": syntax error"), domainErr.ErrInternalServer},
		{"already mapped", domainErr.ErrReceiptNotFound, domainErr.ErrReceiptNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, m.MapError(tt.err, "test"), tt.want)
		})
	}

	assert.NoError(t, m.MapError(nil, "test"))
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	m := NewErrorMapper()

	assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeReceipt), domainErr.ErrReceiptNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeUser), domainErr.ErrUserNotFound)
	assert.ErrorIs(t, m.MapEntityNotFoundError(gorm.ErrRecordNotFound, "other"), domainErr.ErrNotFound)
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, isTransientError(errors.New("database is locked")))
	assert.True(t, isTransientError(errors.New("deadlock detected")))
	assert.False(t, isTransientError(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isTransientError(nil))
}
