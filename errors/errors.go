package errors

import "fmt"

// Application error types organized by category for better error handling

type ErrorType int

const (
	ErrorTypeUnknown ErrorType = iota

	// Domain/Business Logic Errors - errors related to request validation
	ErrorTypeValidation
	ErrorTypeNotFound

	// Infrastructure Errors - errors related to the upstream weather provider
	ErrorTypeUpstream

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
	case ErrorTypeUpstream:
		return "UPSTREAM_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

const (
	ValidationError    = ErrorTypeValidation
	NotFoundError      = ErrorTypeNotFound
	UpstreamError      = ErrorTypeUpstream
	ConfigurationError = ErrorTypeConfiguration
)

// AppError is the application-wide error carrier. For upstream failures it
// also records the provider's HTTP status, raw response body, and whether
// the failure was a deadline expiry.
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	StatusCode int
	Body       string
	Timeout    bool
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

// Infrastructure Error Constructors
func NewUpstreamError(message string, cause error) *AppError {
	return Wrap(UpstreamError, message, cause)
}

// NewUpstreamStatusError records a non-success provider response together
// with its HTTP status and raw body for diagnostics.
func NewUpstreamStatusError(message string, statusCode int, body string) *AppError {
	return &AppError{
		Type:       UpstreamError,
		Message:    fmt.Sprintf("%s [%d]: %s", message, statusCode, body),
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewUpstreamTimeoutError classifies a deadline expiry on the combined fetch.
func NewUpstreamTimeoutError(message string, cause error) *AppError {
	return &AppError{
		Type:    UpstreamError,
		Message: message,
		Cause:   cause,
		Timeout: true,
	}
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ConfigurationError, message, cause)
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ValidationError
	}
	return false
}

func IsNotFoundError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == NotFoundError
	}
	return false
}

func IsUpstreamError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == UpstreamError
	}
	return false
}

func IsConfigurationError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == ConfigurationError
	}
	return false
}

// IsTimeoutError reports whether err is an upstream error caused by the
// request deadline expiring.
func IsTimeoutError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Type == UpstreamError && appErr.Timeout
	}
	return false
}
