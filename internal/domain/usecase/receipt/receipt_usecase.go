package receipt

import (
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/usecase"
)

// ReceiptUseCase implements the receipt business logic
type ReceiptUseCase struct {
	uow          persistence.UnitOfWork
	cache        persistence.ReceiptCache
	storage      storage.FileStorage
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewReceiptUseCase creates a new receipt use case instance.
// cache may be nil, in which case every list goes to the database.
func NewReceiptUseCase(
	uow persistence.UnitOfWork,
	cache persistence.ReceiptCache,
	fileStorage storage.FileStorage,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ReceiptUseCase {
	return &ReceiptUseCase{
		uow:          uow,
		cache:        cache,
		storage:      fileStorage,
		timeProvider: timeProvider,
		logger:       logger.With(map[string]any{"component": "receipt_usecase"}),
	}
}
