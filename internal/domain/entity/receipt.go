package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Values of the fixed receipt inserted by the smoke-test endpoint
const (
	TestReceiptMerchant = "Test Store"
	TestReceiptAmount   = "25.99"
	TestReceiptCategory = "Food & Dining"
)

// DateLayout is the calendar-date format used for Receipt.Date
const DateLayout = "2006-01-02"

// Receipt is one uploaded or recorded purchase and whatever metadata is known about it.
// Every descriptive field is optional; only Status and CreatedAt are always set.
type Receipt struct {
	ID           uint64
	MerchantName *string
	Amount       *decimal.Decimal
	Date         *time.Time // calendar date of the purchase, time part ignored
	Category     *string
	ImageURL     *string // storage location of the receipt image
	RawOCRText   *string
	Status       ReceiptStatus
	CreatedAt    time.Time
}

// NewReceipt creates an empty receipt in the processing state
func NewReceipt(timeProvider coreport.TimeProvider) *Receipt {
	return &Receipt{
		Status:    ReceiptStatusProcessing,
		CreatedAt: timeProvider.Now(),
	}
}

// NewTestReceipt creates the fixed, already completed receipt used to smoke-test persistence
func NewTestReceipt(timeProvider coreport.TimeProvider) *Receipt {
	amount := decimal.RequireFromString(TestReceiptAmount)

	receipt := NewReceipt(timeProvider)
	receipt.MerchantName = StringPtr(TestReceiptMerchant)
	receipt.Amount = &amount
	receipt.Category = StringPtr(TestReceiptCategory)
	receipt.Status = ReceiptStatusCompleted
	return receipt
}

// NewUploadedReceipt creates a processing receipt pointing at a stored image
func NewUploadedReceipt(location string, timeProvider coreport.TimeProvider) *Receipt {
	receipt := NewReceipt(timeProvider)
	if location != "" {
		receipt.ImageURL = StringPtr(location)
	}
	return receipt
}

// SetStatus moves the receipt to the given status
func (r *Receipt) SetStatus(status ReceiptStatus) error {
	if !status.IsValid() {
		return errs.ErrInvalidStatus
	}
	r.Status = status
	return nil
}

// SetDate stores only the calendar part of t
func (r *Receipt) SetDate(t time.Time) {
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	r.Date = &date
}

// FormattedAmount returns the amount with two decimal places, or nil when unknown
func (r *Receipt) FormattedAmount() *string {
	return FormatAmount(r.Amount)
}

// FormattedDate returns the date as YYYY-MM-DD, or nil when unknown
func (r *Receipt) FormattedDate() *string {
	if r.Date == nil {
		return nil
	}
	return StringPtr(r.Date.Format(DateLayout))
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
