package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidUpload       = 4001
	CodeInvalidUserID       = 4002
	CodeInvalidEmail        = 4003
	CodeInvalidStatus       = 4004
	CodeConstraintViolation = 4005
	CodeInvalidPassword     = 4006
	CodeReceiptNotFound     = 4040
	CodeUserNotFound        = 4041
	CodeDuplicateUser       = 4090

	// 5xxx - Server errors
	CodeInternalServer         = 5000
	CodeStorageFailure         = 5001
	CodeUnsupportedStorageType = 5002
	CodeDatabaseUnavailable    = 5030
)

// Base error types
var (
	// ErrInvalidUpload is returned when the uploaded file is missing or unreadable
	ErrInvalidUpload = errors.New("invalid upload")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidEmail is returned when a user email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidPassword is returned when a password is empty
	ErrInvalidPassword = errors.New("password cannot be empty")

	// ErrInvalidStatus is returned when a receipt status is not one of the allowed values
	ErrInvalidStatus = errors.New("invalid receipt status")

	// ErrReceiptNotFound is returned when the requested receipt doesn't exist
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user whose email is taken
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrStorageFailure is returned when a file cannot be written to or removed from storage
	ErrStorageFailure = errors.New("file storage failure")

	// ErrUnsupportedStorageType is returned when the configured storage backend is unknown
	ErrUnsupportedStorageType = errors.New("unsupported storage type")

	// ErrInvalidLocation is returned when a storage location cannot be mapped back to a file
	ErrInvalidLocation = errors.New("invalid storage location")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUpload):
		return CodeInvalidUpload
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidEmail):
		return CodeInvalidEmail
	case errors.Is(err, ErrInvalidPassword):
		return CodeInvalidPassword
	case errors.Is(err, ErrInvalidStatus):
		return CodeInvalidStatus
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrReceiptNotFound):
		return CodeReceiptNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrStorageFailure):
		return CodeStorageFailure
	case errors.Is(err, ErrUnsupportedStorageType):
		return CodeUnsupportedStorageType
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseUnavailable
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error onto the HTTP status the API answers with.
// Anything not recognised as a client error is a 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidUpload),
		errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidPassword),
		errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrConstraintViolation):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// StorageError describes a failed file storage operation
type StorageError struct {
	Operation string
	Backend   string
	Location  string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s storage %s failed (location: %q): %v", e.Backend, e.Operation, e.Location, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes every StorageError match ErrStorageFailure
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"backend":    e.Backend,
		"location":   e.Location,
		"error":      e.Err.Error(),
		"error_code": CodeStorageFailure,
	}
}

// NewStorageError creates a detailed storage error
func NewStorageError(backend, operation, location string, err error) error {
	return &StorageError{
		Operation: operation,
		Backend:   backend,
		Location:  location,
		Err:       err,
	}
}

// UnsupportedStorageTypeError reports the storage type that was requested
type UnsupportedStorageTypeError struct {
	Type string
}

// Error implements the error interface
func (e *UnsupportedStorageTypeError) Error() string {
	return fmt.Sprintf("unsupported storage type: %q", e.Type)
}

// Is checks if the target error is an ErrUnsupportedStorageType
func (e *UnsupportedStorageTypeError) Is(target error) bool {
	return target == ErrUnsupportedStorageType
}

// NewUnsupportedStorageTypeError creates a new unsupported storage type error
func NewUnsupportedStorageTypeError(storageType string) error {
	return &UnsupportedStorageTypeError{Type: storageType}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrReceiptNotFound)
}

// IsStorageError checks if the error came from the file storage layer
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageFailure)
}
