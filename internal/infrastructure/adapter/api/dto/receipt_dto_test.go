package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
)

func TestNewReceiptResponse_JSON(t *testing.T) {
	amount := decimal.RequireFromString("25.9")
	receipt := &entity.Receipt{
		ID:           3,
		MerchantName: entity.StringPtr("Test Store"),
		Amount:       &amount,
		Status:       entity.ReceiptStatusCompleted,
		CreatedAt:    time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	receipt.SetDate(time.Date(2024, 5, 30, 15, 0, 0, 0, time.UTC))

	raw, err := json.Marshal(NewReceiptResponse(receipt))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, float64(3), body["id"])
	assert.Equal(t, "Test Store", body["merchant_name"])
	assert.Equal(t, "25.90", body["amount"])
	assert.Equal(t, "2024-05-30", body["date"])
	assert.Equal(t, "completed", body["status"])
	assert.Equal(t, "2024-06-01T10:00:00Z", body["created_at"])

	assert.Contains(t, body, "category")
	assert.Nil(t, body["category"])
	assert.Nil(t, body["image_url"])
	assert.Nil(t, body["raw_ocr_text"])
}

func TestNewReceiptListResponse_Empty(t *testing.T) {
	raw, err := json.Marshal(NewReceiptListResponse(&usecase.ReceiptList{}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"receipts":[],"count":0}`, string(raw))
}
