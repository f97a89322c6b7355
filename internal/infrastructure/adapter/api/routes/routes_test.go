package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	receiptusecase "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/usecase/receipt"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/cache"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/storage"
)

type testServer struct {
	router  *gin.Engine
	db      *database.TestDBManager
	storage *storage.LocalStorage
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	db := database.NewTestDBManager(t, log)

	fileStorage, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8000", log)
	require.NoError(t, err)

	receiptUseCase := receiptusecase.NewReceiptUseCase(
		db.Manager.CreateUnitOfWork(),
		cache.NewNoopReceiptCache(),
		fileStorage,
		db.TimeProvider,
		log,
	)

	router := gin.New()
	SetupMiddlewares(router, log, nil)
	SetupRoutes(
		router,
		handler.NewReceiptHandler(receiptUseCase, 0, log),
		handler.NewHealthHandler(db.Manager, log),
		fileStorage.Root(),
	)

	return &testServer{router: router, db: db, storage: fileStorage}
}

func (s *testServer) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) listReceipts(t *testing.T) dto.ReceiptListResponse {
	t.Helper()

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/receipts", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReceiptListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestTestReceiptIncreasesCountByOne(t *testing.T) {
	s := newTestServer(t)

	before := s.listReceipts(t)
	assert.Equal(t, 0, before.Count)

	w := s.do(t, httptest.NewRequest(http.MethodPost, "/receipts/test", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Test receipt created!"}`, w.Body.String())

	after := s.listReceipts(t)
	assert.Equal(t, before.Count+1, after.Count)

	created := after.Receipts[len(after.Receipts)-1]
	assert.Equal(t, "Test Store", *created.MerchantName)
	assert.Equal(t, "25.99", *created.Amount)
	assert.Equal(t, "Food & Dining", *created.Category)
	assert.Equal(t, "completed", created.Status)
	assert.Nil(t, created.Date)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRootWorksWithoutDatabase(t *testing.T) {
	s := newTestServer(t)
	s.db.Close(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Receipt Analyzer API is running!"}`, w.Body.String())

	health := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, health.Code)

	list := s.do(t, httptest.NewRequest(http.MethodGet, "/receipts", nil))
	assert.Equal(t, http.StatusInternalServerError, list.Code)
}

func TestHealthReportsConnectionPool(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "up", resp.Database)
	require.NotNil(t, resp.Pool)
	assert.Equal(t, 1, resp.Pool.MaxOpen)
	assert.Equal(t, 1, resp.Pool.Open)
}

func TestUploadStoresAndServesImage(t *testing.T) {
	s := newTestServer(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("user_id", "4"))
	part, err := writer.CreateFormFile("file", "scan.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-png"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/receipts/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := s.do(t, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UploadReceiptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	location := *resp.Receipt.ImageURL
	assert.True(t, strings.HasPrefix(location, "/uploads/user_4/"))
	assert.True(t, strings.HasSuffix(location, ".png"))
	assert.Equal(t, "processing", resp.Receipt.Status)
	assert.Equal(t, "http://localhost:8000"+location, resp.ImageURL)

	file := s.do(t, httptest.NewRequest(http.MethodGet, location, nil))
	assert.Equal(t, http.StatusOK, file.Code)
	assert.Equal(t, "fake-png", file.Body.String())

	assert.Equal(t, 1, s.listReceipts(t).Count)
}
