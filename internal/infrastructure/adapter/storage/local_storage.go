package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	storageport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
)

// URLPrefix is the path under which the HTTP server exposes the local storage root
const URLPrefix = "/uploads"

// DefaultPublicBaseURL is prepended to locations when no base URL is configured
const DefaultPublicBaseURL = "http://localhost:8000"

// LocalStorage keeps uploads on the local filesystem under root/user_<id>/
type LocalStorage struct {
	root    string
	baseURL string
	newName func() string
	logger  coreport.Logger
}

// NewLocalStorage creates the root directory if needed and returns a storage writing into it
func NewLocalStorage(root, publicBaseURL string, logger coreport.Logger) (*LocalStorage, error) {
	if root == "" {
		root = "uploads"
	}
	if publicBaseURL == "" {
		publicBaseURL = DefaultPublicBaseURL
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.NewStorageError("local", "init", root, err)
	}

	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		newName: randomName,
		logger:  logger.With(map[string]any{"component": "local_storage"}),
	}, nil
}

// Root returns the directory served under URLPrefix
func (s *LocalStorage) Root() string {
	return s.root
}

// Save writes the upload to root/user_<id>/<uuid>.<ext> and returns /uploads/user_<id>/<uuid>.<ext>
func (s *LocalStorage) Save(ctx context.Context, upload storageport.Upload, userID uint64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.NewStorageError("local", "save", "", err)
	}
	if upload.Content == nil {
		return "", errs.NewStorageError("local", "save", "", errs.ErrInvalidUpload)
	}

	folder := userFolder(userID)
	name := objectName(s.newName, upload.Filename)
	location := path.Join(URLPrefix, folder, name)

	dir := filepath.Join(s.root, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errs.NewStorageError("local", "save", location, err)
	}

	fullPath := filepath.Join(dir, name)
	file, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.NewStorageError("local", "save", location, err)
	}

	written, copyErr := io.Copy(file, upload.Content)
	closeErr := file.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(fullPath)
		return "", errs.NewStorageError("local", "save", location, err)
	}

	s.logger.Info("Receipt image stored", map[string]any{
		"location": location,
		"bytes":    written,
		"user_id":  userID,
	})

	return location, nil
}

// URL prefixes the location with the public base URL
func (s *LocalStorage) URL(location string) string {
	return s.baseURL + location
}

// Delete removes the file behind a location returned by Save.
// Failures are logged at debug level and reported as false.
func (s *LocalStorage) Delete(_ context.Context, location string) bool {
	fullPath, err := s.resolve(location)
	if err != nil {
		s.logger.Debug("Refusing to delete location", map[string]any{
			"location": location,
			"error":    err.Error(),
		})
		return false
	}

	info, err := os.Stat(fullPath)
	if err != nil || !info.Mode().IsRegular() {
		s.logger.Debug("Nothing to delete", map[string]any{"location": location})
		return false
	}

	if err := os.Remove(fullPath); err != nil {
		s.logger.Debug("Failed to delete stored file", map[string]any{
			"location": location,
			"error":    err.Error(),
		})
		return false
	}

	s.logger.Info("Receipt image deleted", map[string]any{"location": location})
	return true
}

// resolve maps /uploads/... back under root, rejecting anything that escapes it
func (s *LocalStorage) resolve(location string) (string, error) {
	if !strings.HasPrefix(location, URLPrefix+"/") {
		return "", fmt.Errorf("%w: %q is not under %s", errs.ErrInvalidLocation, location, URLPrefix)
	}

	rel := path.Clean(strings.TrimPrefix(location, URLPrefix+"/"))
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") || path.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q escapes the storage root", errs.ErrInvalidLocation, location)
	}

	return filepath.Join(s.root, filepath.FromSlash(rel)), nil
}
