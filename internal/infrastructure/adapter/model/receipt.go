package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt represents the database model for receipts
type Receipt struct {
	ID           uint64              `gorm:"primaryKey;autoIncrement"`
	MerchantName *string             `gorm:"size:255"`
	Amount       decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Date         *time.Time          `gorm:"type:date"`
	Category     *string             `gorm:"size:100"`
	ImageURL     *string             `gorm:"size:500"`
	RawOCRText   *string             `gorm:"column:raw_ocr_text;type:text"`
	Status       string              `gorm:"size:50;not null;default:processing;index:idx_receipts_status"`
	CreatedAt    time.Time           `gorm:"not null;index:idx_receipts_created_at"`
}

// TableName specifies the table name for Receipt
func (Receipt) TableName() string {
	return "receipts"
}
