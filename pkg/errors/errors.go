package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain/Business Logic Errors - errors related to business rules and validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAlreadyExists
	ErrorTypeRateLimited

	// Infrastructure Errors - errors related to external systems and services
	ErrorTypeDatabase
	ErrorTypeExternalAPI
	ErrorTypeStorage

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAlreadyExists:
		return "ALREADY_EXISTS_ERROR"
	case ErrorTypeRateLimited:
		return "RATE_LIMITED_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeExternalAPI:
		return "EXTERNAL_API_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Short aliases used across adapters
const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	AlreadyExistsError = ErrorTypeAlreadyExists
	RateLimitedError   = ErrorTypeRateLimited
	DatabaseError      = ErrorTypeDatabase
	ExternalAPIError   = ErrorTypeExternalAPI
	StorageError       = ErrorTypeStorage
	ConfigurationError = ErrorTypeConfiguration
)

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	// RetryAfter is set on rate limited errors
	RetryAfter time.Duration
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain/Business Logic Error Constructors
func NewValidationError(message string) *AppError {
	return New(ValidationError, message)
}

func NewNotFoundError(message string) *AppError {
	return New(NotFoundError, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(AlreadyExistsError, message)
}

func NewRateLimitedError(message string, retryAfter time.Duration) *AppError {
	err := New(RateLimitedError, message)
	err.RetryAfter = retryAfter
	return err
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(DatabaseError, message, cause)
}

func NewExternalAPIError(message string, cause error) *AppError {
	return Wrap(ExternalAPIError, message, cause)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(StorageError, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// Helper functions for error type checking. They look through wrapped errors.
func isType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

func IsNotFoundError(err error) bool {
	return isType(err, NotFoundError)
}

func IsAlreadyExistsError(err error) bool {
	return isType(err, AlreadyExistsError)
}

func IsValidationError(err error) bool {
	return isType(err, ValidationError)
}

func IsRateLimitedError(err error) bool {
	return isType(err, RateLimitedError)
}

func IsDatabaseError(err error) bool {
	return isType(err, DatabaseError)
}

func IsExternalAPIError(err error) bool {
	return isType(err, ExternalAPIError)
}

func IsStorageError(err error) bool {
	return isType(err, StorageError)
}

func IsConfigurationError(err error) bool {
	return isType(err, ConfigurationError)
}

// RetryAfter returns the wait carried by a rate limited error, or 0.
func RetryAfter(err error) time.Duration {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Type == RateLimitedError {
		return appErr.RetryAfter
	}
	return 0
}
