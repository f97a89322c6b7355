package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/storage"
)

// SetupRoutes configures all the routes for the API.
// uploadsDir is served under /uploads; pass "" when files live in remote storage.
func SetupRoutes(
	router *gin.Engine,
	receiptHandler *handler.ReceiptHandler,
	healthHandler *handler.HealthHandler,
	uploadsDir string,
) {
	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)

	receiptRoutes := router.Group("/receipts")
	{
		// GET /receipts
		receiptRoutes.GET("", receiptHandler.ListReceipts)

		// POST /receipts/test
		receiptRoutes.POST("/test", receiptHandler.CreateTestReceipt)

		// POST /receipts/upload
		receiptRoutes.POST("/upload", receiptHandler.UploadReceipt)
	}

	if uploadsDir != "" {
		router.Static(storage.URLPrefix, uploadsDir)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins...))
}
