package dto

import (
	"time"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
)

// ReceiptResponse is the JSON form of a receipt
type ReceiptResponse struct {
	ID           uint64    `json:"id"`
	MerchantName *string   `json:"merchant_name"`
	Amount       *string   `json:"amount"`
	Date         *string   `json:"date"`
	Category     *string   `json:"category"`
	ImageURL     *string   `json:"image_url"`
	RawOCRText   *string   `json:"raw_ocr_text"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReceiptListResponse is returned by GET /receipts
type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
	Count    int               `json:"count"`
}

// UploadReceiptResponse is returned by POST /receipts/upload
type UploadReceiptResponse struct {
	Message  string          `json:"message"`
	Receipt  ReceiptResponse `json:"receipt"`
	ImageURL string          `json:"image_url"`
}

// NewReceiptResponse converts a receipt entity; amount and date keep their fixed text formats
func NewReceiptResponse(r *entity.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ID:           r.ID,
		MerchantName: r.MerchantName,
		Amount:       r.FormattedAmount(),
		Date:         r.FormattedDate(),
		Category:     r.Category,
		ImageURL:     r.ImageURL,
		RawOCRText:   r.RawOCRText,
		Status:       r.Status.String(),
		CreatedAt:    r.CreatedAt,
	}
}

// NewReceiptListResponse converts a receipt list; Receipts is never null in JSON
func NewReceiptListResponse(list *usecase.ReceiptList) ReceiptListResponse {
	receipts := make([]ReceiptResponse, 0, len(list.Receipts))
	for _, r := range list.Receipts {
		receipts = append(receipts, NewReceiptResponse(r))
	}
	return ReceiptListResponse{
		Receipts: receipts,
		Count:    len(receipts),
	}
}
