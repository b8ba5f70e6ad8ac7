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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template set errors
	ErrTemplateNotFound ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrTemplateInvalid  ErrorCode = "TEMPLATE_INVALID"

	// Project errors
	ErrProjectExists    ErrorCode = "PROJECT_EXISTS"
	ErrProjectName      ErrorCode = "PROJECT_NAME"
	ErrVariableRequired ErrorCode = "VARIABLE_REQUIRED"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"

	// External command errors
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCommandFailed   ErrorCode = "COMMAND_FAILED"

	// Interactive input errors
	ErrPrompt ErrorCode = "PROMPT"
)

// IacError represents a structured error with code and details
type IacError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *IacError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *IacError) Unwrap() error {
	return e.Wrapped
}

// Is matches any IacError carrying the same code
func (e *IacError) Is(target error) bool {
	var targetErr *IacError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new IacError with the given code and message
func New(code ErrorCode, message string) *IacError {
	return &IacError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new IacError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *IacError {
	return &IacError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an IacError. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &IacError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &IacError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *IacError) WithDetail(key string, value interface{}) *IacError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var iacErr *IacError
	if errors.As(err, &iacErr) {
		return iacErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an IacError
func GetErrorCode(err error) ErrorCode {
	var iacErr *IacError
	if errors.As(err, &iacErr) {
		return iacErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an IacError
func GetErrorDetails(err error) map[string]interface{} {
	var iacErr *IacError
	if errors.As(err, &iacErr) {
		return iacErr.Details
	}
	return nil
}
