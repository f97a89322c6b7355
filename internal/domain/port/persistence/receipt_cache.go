package persistence

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
)

// ReceiptCache keeps a copy of the full receipt list between writes.
//
// Every list is stored under the generation it was read at. Invalidate moves the
// cache to a new generation, so a list loaded before an insert committed can be
// written back but is never served again.
type ReceiptCache interface {
	// GetList returns the cached list for the current generation, that generation,
	// and whether a list was present
	GetList(ctx context.Context) (receipts []*entity.Receipt, generation uint64, found bool, err error)
	// SetList stores the list under the generation returned by an earlier GetList
	SetList(ctx context.Context, generation uint64, receipts []*entity.Receipt) error
	// Invalidate starts a new generation so the next read goes to the database
	Invalidate(ctx context.Context) error
}
