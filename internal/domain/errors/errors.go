package errors

import (
	"net/http"

	"fleetalert/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Wrap attaches the underlying cause while keeping the error matchable with errors.Is/As.
func (e *BaseError) Wrap(cause error) error {
	if cause == nil {
		return e
	}

	return &causedError{base: e, cause: errors.WithStack(cause)}
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// causedError pairs a predefined AppError with the error that triggered it.
type causedError struct {
	base  *BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.base.Error() + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.base, e.cause}
}

// Predefined error types
var (
	// Alert run errors
	ErrVehicleFetchFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"VEHICLE_FETCH_FAILED",
		"failed to fetch vehicles",
		"",
	)

	ErrSubscriptionFetchFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"SUBSCRIPTION_FETCH_FAILED",
		"failed to fetch push subscriptions",
		"",
	)

	ErrPushCredentialsMissing = NewBaseError(
		http.StatusInternalServerError,
		"PUSH_CREDENTIALS_MISSING",
		"push transport credentials are not configured",
		"",
	)

	ErrInvalidReferenceDate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REFERENCE_DATE",
		"reference date must use the YYYY-MM-DD format",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"push subscription not found",
		"",
	)

	ErrSubscriptionOwnerRequired = NewBaseError(
		http.StatusUnauthorized,
		"SUBSCRIPTION_OWNER_REQUIRED",
		"anonymous push registration is disabled",
		"",
	)

	ErrSubscriptionKeysRequired = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_KEYS_REQUIRED",
		"web push subscriptions require p256dh and auth keys",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
