package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
)

// ReceiptStatus is the processing state of a receipt
type ReceiptStatus string

const (
	// ReceiptStatusProcessing is the initial state of every new receipt
	ReceiptStatusProcessing ReceiptStatus = "processing"
	// ReceiptStatusCompleted marks a receipt whose data is final
	ReceiptStatusCompleted ReceiptStatus = "completed"
	// ReceiptStatusFailed marks a receipt that could not be processed
	ReceiptStatusFailed ReceiptStatus = "failed"
)

// IsValid reports whether s is one of the known statuses
func (s ReceiptStatus) IsValid() bool {
	switch s {
	case ReceiptStatusProcessing, ReceiptStatusCompleted, ReceiptStatusFailed:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (s ReceiptStatus) String() string {
	return string(s)
}

// ParseReceiptStatus converts a stored or user-supplied value into a ReceiptStatus.
// An empty value yields the default processing status.
func ParseReceiptStatus(value string) (ReceiptStatus, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ReceiptStatusProcessing, nil
	}

	status := ReceiptStatus(value)
	if !status.IsValid() {
		return "", errs.ErrInvalidStatus
	}
	return status, nil
}
