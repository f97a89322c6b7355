package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ""},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.email"), DuplicateKeyError},
		{"postgres unique", errors.New(`duplicate key value violates unique constraint "idx_users_email"`), DuplicateKeyError},
		{"mysql unique", errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'idx_users_email'"), DuplicateKeyError},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), LockError},
		{"deadlock", errors.New("deadlock detected"), LockError},
		{"timeout", errors.New("i/o timeout"), TransientError},
		{"dial", errors.New("dial tcp 127.0.0.1:5432"), ConnectionError},
		{"not null", errors.New("NOT NULL constraint failed: receipts.status"), ConstraintError},
		{"other", errors.New("syntax error"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
