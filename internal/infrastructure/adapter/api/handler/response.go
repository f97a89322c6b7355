package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/api/dto"
)

// respondError logs err and writes the matching ErrorResponse.
// Server errors get a generic message so internals do not leak.
func respondError(c *gin.Context, logger coreport.Logger, logMessage string, err error) {
	status := domainerr.HTTPStatus(err)

	fields := map[string]any{
		"error":      err.Error(),
		"path":       c.Request.URL.Path,
		"request_id": coreport.RequestIDFrom(c.Request.Context()),
	}
	var storageErr *domainerr.StorageError
	if errors.As(err, &storageErr) {
		for k, v := range storageErr.LogFields() {
			fields[k] = v
		}
	}

	message := err.Error()
	if status >= 500 {
		logger.Error(logMessage, fields)
		message = "Internal server error"
	} else {
		logger.Warn(logMessage, fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
