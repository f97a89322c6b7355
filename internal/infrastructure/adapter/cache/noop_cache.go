package cache

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/persistence"
)

// NoopReceiptCache never holds anything. Used when caching is disabled.
type NoopReceiptCache struct{}

// NewNoopReceiptCache creates a cache that always misses
func NewNoopReceiptCache() persistence.ReceiptCache {
	return NoopReceiptCache{}
}

func (NoopReceiptCache) GetList(context.Context) ([]*entity.Receipt, uint64, bool, error) {
	return nil, 0, false, nil
}

func (NoopReceiptCache) SetList(context.Context, uint64, []*entity.Receipt) error {
	return nil
}

func (NoopReceiptCache) Invalidate(context.Context) error {
	return nil
}
