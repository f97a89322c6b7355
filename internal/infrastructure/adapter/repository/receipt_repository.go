package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptRepository implements the ReceiptRepository interface using GORM
type ReceiptRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewReceiptRepository creates a new ReceiptRepository instance
func NewReceiptRepository(db *gorm.DB, logger coreport.Logger) *ReceiptRepository {
	return &ReceiptRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// receiptToModel converts a receipt entity to its database row
func receiptToModel(receipt *entity.Receipt) *model.Receipt {
	row := &model.Receipt{
		ID:           receipt.ID,
		MerchantName: receipt.MerchantName,
		Date:         receipt.Date,
		Category:     receipt.Category,
		ImageURL:     receipt.ImageURL,
		RawOCRText:   receipt.RawOCRText,
		Status:       receipt.Status.String(),
		CreatedAt:    receipt.CreatedAt,
	}
	if receipt.Amount != nil {
		row.Amount = decimal.NewNullDecimal(entity.RoundAmount(*receipt.Amount))
	}
	return row
}

// modelToEntity converts a receipt row to an entity
func (r *ReceiptRepository) modelToEntity(row *model.Receipt) (*entity.Receipt, error) {
	status, err := entity.ParseReceiptStatus(row.Status)
	if err != nil {
		r.logger.Error("Stored receipt has an unknown status", map[string]any{
			"receipt_id": row.ID,
			"status":     row.Status,
		})
		return nil, fmt.Errorf("%w: receipt %d: %s", errs.ErrInternalServer, row.ID, err.Error())
	}

	receipt := &entity.Receipt{
		ID:           row.ID,
		MerchantName: row.MerchantName,
		Category:     row.Category,
		ImageURL:     row.ImageURL,
		RawOCRText:   row.RawOCRText,
		Status:       status,
		CreatedAt:    row.CreatedAt,
	}
	if row.Amount.Valid {
		amount := row.Amount.Decimal
		receipt.Amount = &amount
	}
	if row.Date != nil {
		receipt.SetDate(*row.Date)
	}

	return receipt, nil
}

// handleDatabaseError standardizes database error handling
func (r *ReceiptRepository) handleDatabaseError(operation string, err error, receiptID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("Receipt not found", map[string]any{
			"receipt_id": receiptID,
		})
		return errs.ErrReceiptNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"receipt_id": receiptID,
		"error":      err.Error(),
	})

	switch r.errorClassifier.Classify(err) {
	case ConstraintError, DuplicateKeyError:
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	default:
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
}

// List returns every receipt ordered by ID
func (r *ReceiptRepository) List(ctx context.Context) ([]*entity.Receipt, error) {
	var rows []model.Receipt
	if err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing receipts", err, 0)
	}

	receipts := make([]*entity.Receipt, 0, len(rows))
	for i := range rows {
		receipt, err := r.modelToEntity(&rows[i])
		if err != nil {
			return nil, err
		}
		receipts = append(receipts, receipt)
	}

	r.logger.Debug("Receipts listed", map[string]any{
		"count": len(receipts),
	})
	return receipts, nil
}

// Create inserts a receipt and copies the generated ID back onto it
func (r *ReceiptRepository) Create(ctx context.Context, receipt *entity.Receipt) error {
	row := receiptToModel(receipt)

	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return r.handleDatabaseError("creating receipt", err, receipt.ID)
	}

	receipt.ID = row.ID

	r.logger.Info("Receipt created", map[string]any{
		"receipt_id": receipt.ID,
		"status":     receipt.Status.String(),
	})
	return nil
}

// GetByID retrieves a receipt by ID
func (r *ReceiptRepository) GetByID(ctx context.Context, id uint64) (*entity.Receipt, error) {
	var row model.Receipt
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting receipt", err, id)
	}

	return r.modelToEntity(&row)
}

// Count returns the number of stored receipts
func (r *ReceiptRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Receipt{}).Count(&count).Error; err != nil {
		return 0, r.handleDatabaseError("counting receipts", err, 0)
	}
	return count, nil
}
