package errors

import (
	"net/http"

	"marketplace/internal/errors"
)

// AppError is an error with a stable business code and the HTTP status it maps to.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is safe to show to API clients.
	Message() string
	Details() string
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still match their predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage adds a stack and message while keeping e reachable by errors.As.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details; it still matches e under errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Catalog of business errors. Handlers answer with HTTPCode and ErrorCode.
var (
	// credentials
	ErrUnauthorized       = define(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrInvalidToken       = define(http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
	ErrInvalidCredentials = define(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Incorrect email or password")

	// access
	ErrForbidden       = define(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrNotProductOwner = define(http.StatusForbidden, "NOT_PRODUCT_OWNER", "You do not own this store")

	// lookup
	ErrNotFound         = define(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrUserNotFound     = define(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrMerchantNotFound = define(http.StatusNotFound, "MERCHANT_NOT_FOUND", "Merchant not found")
	ErrProductNotFound  = define(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
	ErrTagNotFound      = define(http.StatusNotFound, "TAG_NOT_FOUND", "Tag not found")

	// uniqueness
	ErrConflict              = define(http.StatusConflict, "CONFLICT", "Resource conflict")
	ErrUserAlreadyExists     = define(http.StatusConflict, "USER_ALREADY_EXISTS", "Email already registered")
	ErrMerchantAlreadyExists = define(http.StatusConflict, "MERCHANT_ALREADY_EXISTS", "User already has a store")
	ErrTagCodeConflict       = define(http.StatusConflict, "TAG_CODE_CONFLICT", "Tag code already in use")

	// input
	ErrValidationFailed = define(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrRateLimited      = define(http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please retry later")

	// internal
	ErrPasswordHashFailed = define(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing error")
	ErrInternalError      = define(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
)

func define(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// DatabaseExecuteError wraps a driver failure as a 500 DATABASE_EXECUTE_FAILED.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error for logging.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
