package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the conditions dotman reports to the user
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"

	// Project and configuration errors
	ErrNotAProject         ErrorCode = "NOT_A_PROJECT"
	ErrConfigCorrupt       ErrorCode = "CONFIG_CORRUPT"
	ErrAlreadyInitialized  ErrorCode = "ALREADY_INITIALIZED"
	ErrTargetNotConfigured ErrorCode = "TARGET_NOT_CONFIGURED"
	ErrPlatformMissing     ErrorCode = "PLATFORM_NOT_CONFIGURED"
	ErrEmptyDotfile        ErrorCode = "EMPTY_DOTFILE"

	// Target errors
	ErrTargetExists  ErrorCode = "TARGET_EXISTS"
	ErrTargetOutside ErrorCode = "TARGET_OUTSIDE_PROJECT"
	ErrTargetMissing ErrorCode = "TARGET_NOT_FOUND"

	// Dotfile errors
	ErrDotfileNotFound  ErrorCode = "DOTFILE_NOT_FOUND"
	ErrDotfileOccupied  ErrorCode = "DOTFILE_OCCUPIED"
	ErrDotfileIsSymlink ErrorCode = "DOTFILE_IS_SYMLINK"
	ErrKindMismatch     ErrorCode = "KIND_MISMATCH"
)

// DotmanError is the single user-facing error type. Every recoverable
// failure carries a code and a human readable message.
type DotmanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error returns the message, followed by the wrapped error if any
func (e *DotmanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *DotmanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotmanError) Is(target error) bool {
	var targetErr *DotmanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotmanError with the given code and message
func New(code ErrorCode, message string) *DotmanError {
	return &DotmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotmanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotmanError {
	return &DotmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotmanError
func Wrap(err error, code ErrorCode, message string) *DotmanError {
	if err == nil {
		return nil
	}
	return &DotmanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotmanError {
	if err == nil {
		return nil
	}
	return &DotmanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotmanError) WithDetail(key string, value interface{}) *DotmanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dotmanErr *DotmanError
	if errors.As(err, &dotmanErr) {
		return dotmanErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotmanError
func GetErrorCode(err error) ErrorCode {
	var dotmanErr *DotmanError
	if errors.As(err, &dotmanErr) {
		return dotmanErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotmanError
func GetErrorDetails(err error) map[string]interface{} {
	var dotmanErr *DotmanError
	if errors.As(err, &dotmanErr) {
		return dotmanErr.Details
	}
	return nil
}
