package receipt

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
)

// CreateTestReceipt inserts the fixed "Test Store" receipt
func (u *ReceiptUseCase) CreateTestReceipt(ctx context.Context) (*entity.Receipt, error) {
	receipt := entity.NewTestReceipt(u.timeProvider)

	if err := u.insert(ctx, receipt); err != nil {
		u.logger.Error("Failed to create test receipt", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Test receipt created", map[string]any{
		"receiptId": receipt.ID,
	})

	return receipt, nil
}

// insert stores a receipt in its own session and invalidates the cached list
func (u *ReceiptUseCase) insert(ctx context.Context, receipt *entity.Receipt) error {
	err := u.uow.Execute(ctx, func(txCtx context.Context) error {
		return u.uow.ReceiptRepository(txCtx).Create(txCtx, receipt)
	})
	if err != nil {
		return err
	}

	u.invalidateList(ctx)
	return nil
}
