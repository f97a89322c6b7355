package storage

import (
	"context"
	"io"
)

// Upload is a file received from a client
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStorage persists uploaded receipt images
type FileStorage interface {
	// Save stores the upload under the given user and returns its location.
	// The stored name is random; only the extension of Filename is kept.
	Save(ctx context.Context, upload Upload, userID uint64) (string, error)

	// URL turns a location returned by Save into an address clients can fetch
	URL(location string) string

	// Delete removes the file at location. It reports whether a file was removed
	// and never returns an error.
	Delete(ctx context.Context, location string) bool
}
