package receipt

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
)

// UploadReceipt stores an uploaded image and records a processing receipt for it
func (u *ReceiptUseCase) UploadReceipt(ctx context.Context, userID uint64, upload storage.Upload) (*usecase.UploadedReceipt, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if upload.Content == nil {
		return nil, fmt.Errorf("%w: no file content", errs.ErrInvalidUpload)
	}

	location, err := u.storage.Save(ctx, upload, userID)
	if err != nil {
		u.logger.Error("Failed to store receipt image", map[string]any{
			"userId":   userID,
			"filename": upload.Filename,
			"error":    err.Error(),
		})
		return nil, err
	}

	receipt := entity.NewUploadedReceipt(location, u.timeProvider)
	if err := u.insert(ctx, receipt); err != nil {
		// the request context may already be done when the insert failed
		removed := u.storage.Delete(context.WithoutCancel(ctx), location)
		u.logger.Error("Failed to record uploaded receipt", map[string]any{
			"userId":        userID,
			"location":      location,
			"image_removed": removed,
			"error":         err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Receipt uploaded", map[string]any{
		"receiptId": receipt.ID,
		"userId":    userID,
		"location":  location,
		"size":      upload.Size,
	})

	return &usecase.UploadedReceipt{
		Receipt:  receipt,
		ImageURL: u.storage.URL(location),
	}, nil
}
