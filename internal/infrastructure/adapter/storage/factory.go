package storage

import (
	"context"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	storageport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/config"
)

// Storage types accepted by New
const (
	TypeLocal = "local"
	TypeS3    = "s3"
)

// New builds the FileStorage selected by cfg.Type
func New(ctx context.Context, cfg config.StorageConfig, logger coreport.Logger) (storageport.FileStorage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case TypeLocal:
		return NewLocalStorage(cfg.LocalDir, cfg.PublicBaseURL, logger)
	case TypeS3:
		opts := S3Options{
			Bucket:       cfg.S3.Bucket,
			Region:       cfg.S3.Region,
			Prefix:       cfg.S3.Prefix,
			Endpoint:     cfg.S3.Endpoint,
			AccessKey:    cfg.S3.AccessKey,
			SecretKey:    cfg.S3.SecretKey,
			UsePathStyle: cfg.S3.UsePathStyle,
		}
		client, err := NewS3Client(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("create s3 client: %w", err)
		}
		return NewS3Storage(client, opts, logger)
	default:
		return nil, errs.NewUnsupportedStorageTypeError(cfg.Type)
	}
}
