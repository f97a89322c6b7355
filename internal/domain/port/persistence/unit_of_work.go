package persistence

import (
	"context"
)

// UnitOfWork scopes a database session to one request and hands out
// repositories bound to that session
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Execute runs fn inside a transaction. The transaction is committed when fn
	// returns nil and rolled back when it returns an error or panics, so the
	// session is always released.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// ReceiptRepository returns a receipt repository bound to the current transaction
	ReceiptRepository(ctx context.Context) ReceiptRepository

	// UserRepository returns a user repository bound to the current transaction
	UserRepository(ctx context.Context) UserRepository
}
