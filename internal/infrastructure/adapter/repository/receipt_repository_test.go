package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/repository"
)

func newReceiptRepo(t *testing.T) (*repository.ReceiptRepository, *database.TestDBManager) {
	t.Helper()
	log := logger.NewNoopLogger()
	testDB := database.NewTestDBManager(t, log)
	return repository.NewReceiptRepository(testDB.Manager.DB(), log), testDB
}

func TestReceiptRepository_CreateAndGet(t *testing.T) {
	repo, testDB := newReceiptRepo(t)
	ctx := context.Background()

	receipt := entity.NewTestReceipt(testDB.TimeProvider)
	receipt.SetDate(time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC))
	receipt.ImageURL = entity.StringPtr("/uploads/user_1/a.jpg")

	require.NoError(t, repo.Create(ctx, receipt))
	require.NotZero(t, receipt.ID)

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.TestReceiptMerchant, *stored.MerchantName)
	assert.Equal(t, entity.TestReceiptCategory, *stored.Category)
	assert.Equal(t, "25.99", *stored.FormattedAmount())
	assert.Equal(t, "2024-03-09", *stored.FormattedDate())
	assert.Equal(t, "/uploads/user_1/a.jpg", *stored.ImageURL)
	assert.Nil(t, stored.RawOCRText)
	assert.Equal(t, entity.ReceiptStatusCompleted, stored.Status)
}

func TestReceiptRepository_OptionalFieldsStayNull(t *testing.T) {
	repo, testDB := newReceiptRepo(t)
	ctx := context.Background()

	receipt := entity.NewReceipt(testDB.TimeProvider)
	require.NoError(t, repo.Create(ctx, receipt))

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)

	assert.Nil(t, stored.MerchantName)
	assert.Nil(t, stored.Amount)
	assert.Nil(t, stored.Date)
	assert.Nil(t, stored.Category)
	assert.Nil(t, stored.ImageURL)
	assert.Equal(t, entity.ReceiptStatusProcessing, stored.Status)
}

func TestReceiptRepository_AmountIsRoundedToCents(t *testing.T) {
	repo, testDB := newReceiptRepo(t)
	ctx := context.Background()

	amount := decimal.RequireFromString("10.005")
	receipt := entity.NewReceipt(testDB.TimeProvider)
	receipt.Amount = &amount
	require.NoError(t, repo.Create(ctx, receipt))

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.01", *stored.FormattedAmount())
}

func TestReceiptRepository_ListAndCount(t *testing.T) {
	repo, testDB := newReceiptRepo(t)
	ctx := context.Background()

	receipts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, receipts)

	first := testDB.CreateTestReceipt(t, "Corner Shop", "completed")
	second := testDB.CreateTestReceipt(t, "Bakery", "failed")

	receipts, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.Equal(t, first, receipts[0].ID)
	assert.Equal(t, second, receipts[1].ID)
	assert.Equal(t, entity.ReceiptStatusFailed, receipts[1].Status)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestReceiptRepository_GetByIDNotFound(t *testing.T) {
	repo, _ := newReceiptRepo(t)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, errs.ErrReceiptNotFound)
}

func TestReceiptRepository_UnknownStoredStatus(t *testing.T) {
	repo, testDB := newReceiptRepo(t)

	id := testDB.CreateTestReceipt(t, "Odd", "archived")

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, errs.ErrInternalServer)
}
