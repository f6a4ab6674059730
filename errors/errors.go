package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// Check-in ingestion errors
	ErrCodeInvalidMood        ErrorCode = "INVALID_MOOD"
	ErrCodeInvalidRawLine     ErrorCode = "INVALID_RAW_LINE"
	ErrCodeInvalidContentType ErrorCode = "INVALID_CONTENT_TYPE"
	ErrCodeMissingFields      ErrorCode = "MISSING_FIELDS"

	// Insight errors
	ErrCodeInvalidPeriod ErrorCode = "INVALID_PERIOD"
	ErrCodeEmptyPeriod   ErrorCode = "EMPTY_PERIOD"
	ErrCodeLLMFailed     ErrorCode = "LLM_FAILED"

	// Database errors
	ErrCodeDBError    ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound ErrorCode = "DB_NOT_FOUND"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// AppError carries a code, a human-readable message and an optional cause
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// IsAppError reports whether err is (or wraps) an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Ingestion errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Insight errors
	ErrNoCheckIns = errors.New("no check-ins in this period")
	ErrLLMFailed  = errors.New("llm analysis failed")
)
