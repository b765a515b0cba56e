package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Rule errors
	ErrInvalidRule   ErrorCode = "INVALID_RULE"
	ErrRuleInvariant ErrorCode = "RULE_INVARIANT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrCopyFailed ErrorCode = "COPY_FAILED"
	ErrFileExists ErrorCode = "FILE_EXISTS"
	ErrNotRegular ErrorCode = "NOT_REGULAR"
)

// DpError represents a structured error with code and details
type DpError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DpError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DpError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DpError carrying the same code
func (e *DpError) Is(target error) bool {
	var targetErr *DpError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DpError with the given code and message
func New(code ErrorCode, message string) *DpError {
	return &DpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DpError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DpError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a DpError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &DpError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *DpError) WithDetail(key string, value interface{}) *DpError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dpErr *DpError
	if errors.As(err, &dpErr) {
		return dpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DpError
func GetErrorCode(err error) ErrorCode {
	var dpErr *DpError
	if errors.As(err, &dpErr) {
		return dpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DpError
func GetErrorDetails(err error) map[string]interface{} {
	var dpErr *DpError
	if errors.As(err, &dpErr) {
		return dpErr.Details
	}
	return nil
}
