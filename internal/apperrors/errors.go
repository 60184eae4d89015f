package apperrors

import (
	"fmt"
	"net/http"
)

// ErrorCode identifies a failure class independent of its message
type ErrorCode string

const (
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeDuplicateURL     ErrorCode = "DUPLICATE_URL"
	CodeFetchFailed      ErrorCode = "FETCH_FAILED"
	CodeNotAnImage       ErrorCode = "NOT_AN_IMAGE"
	CodeStorageError     ErrorCode = "STORAGE_ERROR"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// AppError is the error type returned by services; handlers translate it
// into an HTTP status and a short message without exposing internals
type AppError struct {
	Code     ErrorCode
	Message  string
	Err      error
	HTTPCode int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without an underlying cause
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap creates an AppError that carries an underlying cause
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// Predefined errors
var (
	ErrDuplicateURL = New(CodeDuplicateURL, "This image URL has already been submitted", http.StatusConflict)
)

// ValidationError creates a 400 validation failure with the given message
func ValidationError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

// FetchError creates a 500 remote fetch failure
func FetchError(err error, message string) *AppError {
	return Wrap(err, CodeFetchFailed, message, http.StatusInternalServerError)
}

// NotAnImageError creates a 500 failure for non-image content
func NotAnImageError(message string) *AppError {
	return New(CodeNotAnImage, message, http.StatusInternalServerError)
}

// StorageError creates a 500 filesystem or database failure
func StorageError(err error, message string) *AppError {
	return Wrap(err, CodeStorageError, message, http.StatusInternalServerError)
}
