package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/entity"
	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/amirhossein-jamali/receipt-analyzer/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/receipt-analyzer/mocks/port/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newQuietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func newReceiptRouter(t *testing.T, uc *usecasemocks.MockReceiptUseCase, maxUpload int64) *gin.Engine {
	h := NewReceiptHandler(uc, maxUpload, newQuietLogger(t))

	router := gin.New()
	router.GET("/receipts", h.ListReceipts)
	router.POST("/receipts/test", h.CreateTestReceipt)
	router.POST("/receipts/upload", h.UploadReceipt)
	return router
}

func multipartBody(t *testing.T, userID, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if userID != "" {
		require.NoError(t, writer.WriteField("user_id", userID))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestReceiptHandler_ListReceipts(t *testing.T) {
	t.Run("should return receipts and their count", func(t *testing.T) {
		uc := usecasemocks.NewMockReceiptUseCase(t)
		amount := decimal.RequireFromString("25.99")
		uc.EXPECT().ListReceipts(mock.Anything).Return(&usecase.ReceiptList{
			Receipts: []*entity.Receipt{
				{ID: 1, MerchantName: entity.StringPtr("Test Store"), Amount: &amount, Status: entity.ReceiptStatusCompleted},
				{ID: 2, Status: entity.ReceiptStatusProcessing},
			},
			Count: 2,
		}, nil).Once()

		w := httptest.NewRecorder()
		newReceiptRouter(t, uc, 0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/receipts", nil))

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ReceiptListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.Count)
		require.Len(t, resp.Receipts, 2)
		assert.Equal(t, "25.99", *resp.Receipts[0].Amount)
		assert.Nil(t, resp.Receipts[1].Amount)
		assert.Equal(t, "processing", resp.Receipts[1].Status)
	})

	t.Run("should answer 500 when the database fails", func(t *testing.T) {
		uc := usecasemocks.NewMockReceiptUseCase(t)
		uc.EXPECT().ListReceipts(mock.Anything).
			Return(nil, errors.Join(errs.ErrDatabaseConnection, errors.New("disk I/O error"))).Once()

		w := httptest.NewRecorder()
		newReceiptRouter(t, uc, 0).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/receipts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"code":5030,"message":"Internal server error"}`, w.Body.String())
	})
}

func TestReceiptHandler_CreateTestReceipt(t *testing.T) {
	t.Run("should confirm the insert", func(t *testing.T) {
		uc := usecasemocks.NewMockReceiptUseCase(t)
		uc.EXPECT().CreateTestReceipt(mock.Anything).Return(&entity.Receipt{ID: 1}, nil).Once()

		w := httptest.NewRecorder()
		newReceiptRouter(t, uc, 0).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/receipts/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Test receipt created!"}`, w.Body.String())
	})

	t.Run("should answer 500 when the insert fails", func(t *testing.T) {
		uc := usecasemocks.NewMockReceiptUseCase(t)
		uc.EXPECT().CreateTestReceipt(mock.Anything).Return(nil, errs.ErrInternalServer).Once()

		w := httptest.NewRecorder()
		newReceiptRouter(t, uc, 0).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/receipts/test", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestReceiptHandler_UploadReceipt(t *testing.T) {
	t.Run("should pass the file to the use case and answer 201", func(t *testing.T) {
		uc := usecasemocks.NewMockReceiptUseCase(t)
		location := "/uploads/user_5/abc.png"
		uc.EXPECT().UploadReceipt(mock.Anything, uint64(5), mock.Anything).
			RunAndReturn(func(_ context.Context, _ uint64, upload storage.Upload) (*usecase.UploadedReceipt, error) {
				data, err := io.ReadAll(upload.Content)
				require.NoError(t, err)
				assert.Equal(t, "png-bytes", string(data))
				assert.Equal(t, "lunch.png", upload.Filename)
				assert.Equal(t, int64(9), upload.Size)

				return &usecase.UploadedReceipt{
					Receipt: &entity.Receipt{
						ID:        7,
						ImageURL:  &location,
						Status:    entity.ReceiptStatusProcessing,
						CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
					},
					ImageURL: "http://localhost:8000" + location,
				}, nil
			}).Once()

		body, contentType := multipartBody(t, "5", "lunch.png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/receipts/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newReceiptRouter(t, uc, 0).ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.UploadReceiptResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ReceiptUploadedMessage, resp.Message)
		assert.Equal(t, uint64(7), resp.Receipt.ID)
		assert.Equal(t, location, *resp.Receipt.ImageURL)
		assert.Equal(t, "http://localhost:8000"+location, resp.ImageURL)
	})

	tests := []struct {
		name     string
		userID   string
		filename string
		content  []byte
		maxSize  int64
		wantCode int
	}{
		{"missing user id", "", "a.jpg", []byte("1"), 0, errs.CodeInvalidUserID},
		{"non-numeric user id", "abc", "a.jpg", []byte("1"), 0, errs.CodeInvalidUserID},
		{"zero user id", "0", "a.jpg", []byte("1"), 0, errs.CodeInvalidUserID},
		{"missing file", "1", "", nil, 0, errs.CodeInvalidUpload},
		{"file too large", "1", "a.jpg", bytes.Repeat([]byte("x"), 64), 32, errs.CodeInvalidUpload},
	}

	for _, tt := range tests {
		t.Run("should answer 400 for "+tt.name, func(t *testing.T) {
			uc := usecasemocks.NewMockReceiptUseCase(t)

			body, contentType := multipartBody(t, tt.userID, tt.filename, tt.content)
			req := httptest.NewRequest(http.MethodPost, "/receipts/upload", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			newReceiptRouter(t, uc, tt.maxSize).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}

	t.Run("should answer 500 when storage fails", func(t *testing.T) {
		uc := usecasemocks.NewMockReceiptUseCase(t)
		uc.EXPECT().UploadReceipt(mock.Anything, uint64(1), mock.Anything).
			Return(nil, errs.NewStorageError("local", "save", "", errors.New("disk full"))).Once()

		body, contentType := multipartBody(t, "1", "a.jpg", []byte("1"))
		req := httptest.NewRequest(http.MethodPost, "/receipts/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		newReceiptRouter(t, uc, 0).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"code":5001,"message":"Internal server error"}`, w.Body.String())
	})
}
