package usecase

import (
	"context"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
)

// ReceiptList is every stored receipt together with their number
type ReceiptList struct {
	Receipts []*entity.Receipt
	Count    int
}

// UploadedReceipt is a receipt created from an upload and the public URL of its image
type UploadedReceipt struct {
	Receipt  *entity.Receipt
	ImageURL string
}

// ReceiptUseCase defines the receipt operations exposed over HTTP
type ReceiptUseCase interface {
	// ListReceipts returns all receipts, unfiltered and unpaginated.
	// Count always equals len(Receipts).
	ListReceipts(ctx context.Context) (*ReceiptList, error)

	// CreateTestReceipt inserts the fixed "Test Store" receipt
	CreateTestReceipt(ctx context.Context) (*entity.Receipt, error)

	// UploadReceipt stores the image for userID and records a processing receipt for it.
	// If the receipt cannot be recorded the stored image is removed again.
	UploadReceipt(ctx context.Context, userID uint64, upload storage.Upload) (*UploadedReceipt, error)
}
