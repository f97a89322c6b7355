package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/receipt-analyzer/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceipt(t *testing.T) {
	fixedTime := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	receipt := NewReceipt(mockTime)

	assert.Equal(t, ReceiptStatusProcessing, receipt.Status)
	assert.Equal(t, fixedTime, receipt.CreatedAt)
	assert.Nil(t, receipt.MerchantName)
	assert.Nil(t, receipt.Amount)
	assert.Nil(t, receipt.Date)
	assert.Nil(t, receipt.Category)
	assert.Nil(t, receipt.ImageURL)
	assert.Nil(t, receipt.RawOCRText)
}

func TestNewTestReceipt(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Once()

	receipt := NewTestReceipt(mockTime)

	require.NotNil(t, receipt.MerchantName)
	require.NotNil(t, receipt.Amount)
	require.NotNil(t, receipt.Category)
	assert.Equal(t, "Test Store", *receipt.MerchantName)
	assert.True(t, receipt.Amount.Equal(decimal.RequireFromString("25.99")))
	assert.Equal(t, "Food & Dining", *receipt.Category)
	assert.Equal(t, ReceiptStatusCompleted, receipt.Status)
	assert.Nil(t, receipt.ImageURL)
	assert.Equal(t, "25.99", *receipt.FormattedAmount())
}

func TestNewUploadedReceipt(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Now()).Times(2)

	receipt := NewUploadedReceipt("/uploads/user_7/abc.png", mockTime)
	require.NotNil(t, receipt.ImageURL)
	assert.Equal(t, "/uploads/user_7/abc.png", *receipt.ImageURL)
	assert.Equal(t, ReceiptStatusProcessing, receipt.Status)

	noImage := NewUploadedReceipt("", mockTime)
	assert.Nil(t, noImage.ImageURL)
}

func TestReceiptSetStatus(t *testing.T) {
	receipt := &Receipt{Status: ReceiptStatusProcessing}

	require.NoError(t, receipt.SetStatus(ReceiptStatusFailed))
	assert.Equal(t, ReceiptStatusFailed, receipt.Status)

	err := receipt.SetStatus(ReceiptStatus("archived"))
	assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	assert.Equal(t, ReceiptStatusFailed, receipt.Status)
}

func TestReceiptDate(t *testing.T) {
	receipt := &Receipt{}
	assert.Nil(t, receipt.FormattedDate())

	receipt.SetDate(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC))
	require.NotNil(t, receipt.FormattedDate())
	assert.Equal(t, "2024-02-29", *receipt.FormattedDate())
	assert.Equal(t, 0, receipt.Date.Hour())
}

func TestFormatAmount(t *testing.T) {
	assert.Nil(t, FormatAmount(nil))

	testCases := map[string]string{
		"25.99":   "25.99",
		"10":      "10.00",
		"0.5":     "0.50",
		"3.14159": "3.14",
	}
	for input, expected := range testCases {
		t.Run(input, func(t *testing.T) {
			amount := decimal.RequireFromString(input)
			assert.Equal(t, expected, *FormatAmount(&amount))
		})
	}

	assert.Equal(t, "1.01", RoundAmount(decimal.RequireFromString("1.005")).StringFixed(2))
}

func TestParseReceiptStatus(t *testing.T) {
	testCases := []struct {
		input    string
		expected ReceiptStatus
		wantErr  bool
	}{
		{"", ReceiptStatusProcessing, false},
		{"processing", ReceiptStatusProcessing, false},
		{" Completed ", ReceiptStatusCompleted, false},
		{"FAILED", ReceiptStatusFailed, false},
		{"pending", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			status, err := ParseReceiptStatus(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
			assert.True(t, status.IsValid())
		})
	}
}
