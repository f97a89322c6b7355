package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	storageport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
	"github.com/amirhossein-jamali/receipt-analyzer/internal/infrastructure/adapter/logger"
)

// fakeS3 records calls and keeps object bodies in memory
type fakeS3 struct {
	objects   map[string]string
	putErr    error
	deleteErr error
	lastPut   *s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.lastPut = in
	f.objects[aws.ToString(in.Key)] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func newTestS3Storage(t *testing.T, client S3API, opts S3Options) *S3Storage {
	t.Helper()

	s, err := NewS3Storage(client, opts, logger.NewNoopLogger())
	require.NoError(t, err)
	s.newName = func() string { return "fixed" }
	return s
}

func TestNewS3Storage_Validation(t *testing.T) {
	_, err := NewS3Storage(newFakeS3(), S3Options{Region: "eu-west-1"}, logger.NewNoopLogger())
	assert.Error(t, err)

	_, err = NewS3Storage(newFakeS3(), S3Options{Bucket: "receipts"}, logger.NewNoopLogger())
	assert.Error(t, err)
}

func TestS3Storage_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("should upload under the user prefix and return the public URL", func(t *testing.T) {
		client := newFakeS3()
		s := newTestS3Storage(t, client, S3Options{Bucket: "receipts", Region: "eu-west-1", Prefix: "images"})

		location, err := s.Save(ctx, storageport.Upload{
			Filename:    "x.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png-bytes"),
		}, 7)

		require.NoError(t, err)
		assert.Equal(t, "https://receipts.s3.eu-west-1.amazonaws.com/images/user_7/fixed.png", location)
		assert.Equal(t, "png-bytes", client.objects["images/user_7/fixed.png"])
		assert.Equal(t, int64(9), aws.ToInt64(client.lastPut.ContentLength))
		assert.Equal(t, "image/png", aws.ToString(client.lastPut.ContentType))
	})

	t.Run("should use the custom endpoint in locations", func(t *testing.T) {
		client := newFakeS3()
		s := newTestS3Storage(t, client, S3Options{Bucket: "receipts", Endpoint: "http://minio:9000/"})

		location, err := s.Save(ctx, storageport.Upload{Filename: "scan", Content: strings.NewReader("1")}, 2)

		require.NoError(t, err)
		assert.Equal(t, "http://minio:9000/receipts/user_2/fixed.jpg", location)
		assert.Equal(t, location, s.URL(location))
	})

	t.Run("should wrap upload failures as storage errors", func(t *testing.T) {
		client := newFakeS3()
		client.putErr = errors.New("access denied")
		s := newTestS3Storage(t, client, S3Options{Bucket: "receipts", Region: "eu-west-1"})

		_, err := s.Save(ctx, storageport.Upload{Filename: "a.jpg", Content: strings.NewReader("1")}, 1)

		assert.ErrorIs(t, err, errs.ErrStorageFailure)
	})
}

func TestS3Storage_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete an uploaded object", func(t *testing.T) {
		client := newFakeS3()
		s := newTestS3Storage(t, client, S3Options{Bucket: "receipts", Region: "eu-west-1"})
		location, err := s.Save(ctx, storageport.Upload{Filename: "a.jpg", Content: strings.NewReader("1")}, 1)
		require.NoError(t, err)

		assert.True(t, s.Delete(ctx, location))
		assert.Empty(t, client.objects)
	})

	t.Run("should refuse URLs of another bucket", func(t *testing.T) {
		s := newTestS3Storage(t, newFakeS3(), S3Options{Bucket: "receipts", Region: "eu-west-1"})

		assert.False(t, s.Delete(ctx, "https://other.s3.eu-west-1.amazonaws.com/user_1/a.jpg"))
		assert.False(t, s.Delete(ctx, "/uploads/user_1/a.jpg"))
	})

	t.Run("should return false when the client fails", func(t *testing.T) {
		client := newFakeS3()
		client.deleteErr = errors.New("boom")
		s := newTestS3Storage(t, client, S3Options{Bucket: "receipts", Region: "eu-west-1"})

		assert.False(t, s.Delete(ctx, "https://receipts.s3.eu-west-1.amazonaws.com/user_1/a.jpg"))
	})
}
