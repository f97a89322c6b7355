package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/dto"
)

// Response messages
const (
	TestReceiptCreatedMessage = "Test receipt created!"
	ReceiptUploadedMessage    = "Receipt uploaded!"
)

// DefaultMaxUploadSize applies when no limit is configured
const DefaultMaxUploadSize int64 = 10 << 20

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptUseCase usecase.ReceiptUseCase
	maxUploadSize  int64
	logger         coreport.Logger
}

// NewReceiptHandler creates a new receipt handler instance
func NewReceiptHandler(
	receiptUseCase usecase.ReceiptUseCase,
	maxUploadSize int64,
	logger coreport.Logger,
) *ReceiptHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &ReceiptHandler{
		receiptUseCase: receiptUseCase,
		maxUploadSize:  maxUploadSize,
		logger:         logger,
	}
}

// ListReceipts handles GET /receipts
func (h *ReceiptHandler) ListReceipts(c *gin.Context) {
	list, err := h.receiptUseCase.ListReceipts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Error listing receipts", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewReceiptListResponse(list))
}

// CreateTestReceipt handles POST /receipts/test
func (h *ReceiptHandler) CreateTestReceipt(c *gin.Context) {
	if _, err := h.receiptUseCase.CreateTestReceipt(c.Request.Context()); err != nil {
		respondError(c, h.logger, "Error creating test receipt", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: TestReceiptCreatedMessage})
}

// UploadReceipt handles POST /receipts/upload with a multipart "file" and "user_id"
func (h *ReceiptHandler) UploadReceipt(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+(1<<20))

	userID, err := strconv.ParseUint(strings.TrimSpace(c.PostForm("user_id")), 10, 64)
	if err != nil || userID == 0 {
		respondError(c, h.logger, "Invalid upload user ID", domainerr.ErrInvalidUserID)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		respondError(c, h.logger, "Missing upload file",
			fmt.Errorf("%w: multipart field \"file\" is required", domainerr.ErrInvalidUpload))
		return
	}
	if header.Size > h.maxUploadSize {
		respondError(c, h.logger, "Upload too large",
			fmt.Errorf("%w: file exceeds %d bytes", domainerr.ErrInvalidUpload, h.maxUploadSize))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, h.logger, "Unreadable upload file", fmt.Errorf("%w: %v", domainerr.ErrInvalidUpload, err))
		return
	}
	defer file.Close()

	result, err := h.receiptUseCase.UploadReceipt(c.Request.Context(), userID, storage.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     file,
	})
	if err != nil {
		respondError(c, h.logger, "Error uploading receipt", err)
		return
	}

	c.JSON(http.StatusCreated, dto.UploadReceiptResponse{
		Message:  ReceiptUploadedMessage,
		Receipt:  dto.NewReceiptResponse(result.Receipt),
		ImageURL: result.ImageURL,
	})
}
