package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	errs "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/error"
	coreport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/core"
	storageport "github.com/amirhossein-jamali/receipt-analyzer/internal/domain/port/storage"
)

// S3API is the part of the S3 client the storage uses
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Options describes the bucket uploads go to
type S3Options struct {
	Bucket       string
	Region       string
	Prefix       string // prepended to every key, e.g. "receipts/"
	Endpoint     string // custom endpoint for S3-compatible stores
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
}

// S3Storage keeps uploads in an S3 bucket and returns public object URLs as locations
type S3Storage struct {
	client  S3API
	opts    S3Options
	newName func() string
	logger  coreport.Logger
}

// NewS3Client builds an S3 client from the default credential chain,
// or from static keys when both are set
func NewS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	}), nil
}

// NewS3Storage creates an S3-backed storage using client
func NewS3Storage(client S3API, opts S3Options, logger coreport.Logger) (*S3Storage, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}
	if opts.Region == "" && opts.Endpoint == "" {
		return nil, errors.New("s3 region or endpoint is required")
	}
	if opts.Prefix != "" && !strings.HasSuffix(opts.Prefix, "/") {
		opts.Prefix += "/"
	}
	opts.Endpoint = strings.TrimRight(opts.Endpoint, "/")

	return &S3Storage{
		client:  client,
		opts:    opts,
		newName: randomName,
		logger:  logger.With(map[string]any{"component": "s3_storage", "bucket": opts.Bucket}),
	}, nil
}

// Save uploads to <prefix>user_<id>/<uuid>.<ext> and returns the object's public URL
func (s *S3Storage) Save(ctx context.Context, upload storageport.Upload, userID uint64) (string, error) {
	if upload.Content == nil {
		return "", errs.NewStorageError("s3", "save", "", errs.ErrInvalidUpload)
	}

	key := s.opts.Prefix + path.Join(userFolder(userID), objectName(s.newName, upload.Filename))

	// the SDK needs a seekable body to sign the payload
	body, err := io.ReadAll(upload.Content)
	if err != nil {
		return "", errs.NewStorageError("s3", "save", key, err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.opts.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if upload.ContentType != "" {
		input.ContentType = aws.String(upload.ContentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", errs.NewStorageError("s3", "save", key, err)
	}

	location := s.publicURL(key)
	s.logger.Info("Receipt image uploaded", map[string]any{
		"key":     key,
		"bytes":   len(body),
		"user_id": userID,
	})

	return location, nil
}

// URL returns the location unchanged; S3 locations are already absolute
func (s *S3Storage) URL(location string) string {
	return location
}

// Delete removes the object behind a URL returned by Save
func (s *S3Storage) Delete(ctx context.Context, location string) bool {
	key := s.objectKey(location)
	if key == "" {
		s.logger.Debug("Refusing to delete location outside the bucket", map[string]any{
			"location": location,
		})
		return false
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Debug("Failed to delete object", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return false
	}

	s.logger.Info("Receipt image deleted", map[string]any{"key": key})
	return true
}

// publicURL is https://<bucket>.s3.<region>.amazonaws.com/<key>, or <endpoint>/<bucket>/<key>
func (s *S3Storage) publicURL(key string) string {
	if s.opts.Endpoint != "" {
		return s.opts.Endpoint + "/" + s.opts.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.opts.Bucket, s.opts.Region, key)
}

// objectKey reverses publicURL; it returns "" for URLs that do not point into the bucket
func (s *S3Storage) objectKey(location string) string {
	base := s.publicURL("")
	if !strings.HasPrefix(location, base) {
		return ""
	}

	key := strings.TrimPrefix(location, base)
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}
	if key == "" || strings.Contains(key, "..") {
		return ""
	}
	return key
}
