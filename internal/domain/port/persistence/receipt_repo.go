package persistence

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
)

// ReceiptRepository defines the queries the service runs against stored receipts
type ReceiptRepository interface {
	// List returns every stored receipt ordered by ID.
	// There is no filtering or pagination.
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	List(ctx context.Context) ([]*entity.Receipt, error)

	// Create inserts a new receipt and sets its ID
	//
	// Possible errors:
	// - ErrConstraintViolation: If a column constraint is violated
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, receipt *entity.Receipt) error

	// GetByID retrieves a single receipt
	//
	// Possible errors:
	// - ErrReceiptNotFound: If no receipt has the given ID
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Receipt, error)

	// Count returns the number of stored receipts
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Count(ctx context.Context) (int64, error)
}
