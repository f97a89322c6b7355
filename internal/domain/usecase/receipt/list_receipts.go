package receipt

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
)

// ListReceipts returns every stored receipt and their count
func (u *ReceiptUseCase) ListReceipts(ctx context.Context) (*usecase.ReceiptList, error) {
	lookup := u.cachedList(ctx)
	if lookup.hit {
		return newReceiptList(lookup.receipts), nil
	}

	var receipts []*entity.Receipt
	err := u.uow.Execute(ctx, func(txCtx context.Context) error {
		var err error
		receipts, err = u.uow.ReceiptRepository(txCtx).List(txCtx)
		return err
	})
	if err != nil {
		u.logger.Error("Failed to list receipts", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if lookup.usable {
		u.storeList(ctx, lookup.generation, receipts)
	}

	return newReceiptList(receipts), nil
}

func newReceiptList(receipts []*entity.Receipt) *usecase.ReceiptList {
	if receipts == nil {
		receipts = []*entity.Receipt{}
	}
	return &usecase.ReceiptList{
		Receipts: receipts,
		Count:    len(receipts),
	}
}

// listLookup is the outcome of a cache read taken before the database read
type listLookup struct {
	receipts   []*entity.Receipt
	generation uint64
	hit        bool
	usable     bool
}

// cachedList reads the list from the cache. Cache errors are logged and treated as a miss
// that must not be written back, since the generation is unknown.
func (u *ReceiptUseCase) cachedList(ctx context.Context) listLookup {
	if u.cache == nil {
		return listLookup{}
	}

	receipts, generation, found, err := u.cache.GetList(ctx)
	if err != nil {
		u.logger.Warn("Receipt cache read failed", map[string]any{
			"error": err.Error(),
		})
		return listLookup{}
	}
	return listLookup{
		receipts:   receipts,
		generation: generation,
		hit:        found,
		usable:     true,
	}
}

func (u *ReceiptUseCase) storeList(ctx context.Context, generation uint64, receipts []*entity.Receipt) {
	if err := u.cache.SetList(ctx, generation, receipts); err != nil {
		u.logger.Warn("Receipt cache write failed", map[string]any{
			"generation": generation,
			"error":      err.Error(),
		})
	}
}

// invalidateList drops the cached list after a successful insert
func (u *ReceiptUseCase) invalidateList(ctx context.Context) {
	if u.cache == nil {
		return
	}

	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("Receipt cache invalidation failed", map[string]any{
			"error": err.Error(),
		})
	}
}
