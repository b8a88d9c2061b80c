// Package errors defines the structured, coded error type shared by every
// physq package. Codes are stable and meant to be matched with IsErrorCode
// or errors.Is rather than by message.
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

	// Unit expression and registry errors
	ErrUnitSyntax     ErrorCode = "UNIT_SYNTAX"
	ErrUnknownUnit    ErrorCode = "UNKNOWN_UNIT"
	ErrDuplicateUnit  ErrorCode = "DUPLICATE_UNIT"
	ErrRegistryFrozen ErrorCode = "REGISTRY_FROZEN"
	ErrUnitDefinition ErrorCode = "UNIT_DEFINITION"

	// Quantity errors
	ErrDimensionMismatch ErrorCode = "DIMENSION_MISMATCH"
	ErrShapeMismatch     ErrorCode = "SHAPE_MISMATCH"
	ErrNotComparable     ErrorCode = "NOT_COMPARABLE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// PhysqError represents a structured error with code and details
type PhysqError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PhysqError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PhysqError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a PhysqError carrying the same code
func (e *PhysqError) Is(target error) bool {
	var targetErr *PhysqError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PhysqError with the given code and message
func New(code ErrorCode, message string) *PhysqError {
	return &PhysqError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PhysqError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PhysqError {
	return &PhysqError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PhysqError
func Wrap(err error, code ErrorCode, message string) *PhysqError {
	if err == nil {
		return nil
	}
	return &PhysqError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PhysqError {
	if err == nil {
		return nil
	}
	return &PhysqError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// DimensionMismatch builds the error returned whenever an operation needs
// two equal dimensions. Both canonical dimension strings end up in the
// message and in the "expected"/"actual" details.
func DimensionMismatch(operation, expected, actual string) *PhysqError {
	return Newf(ErrDimensionMismatch, "%s: dimension mismatch: expected %s, got %s", operation, expected, actual).
		WithDetail("operation", operation).
		WithDetail("expected", expected).
		WithDetail("actual", actual)
}

// WithDetail adds a detail to the error
func (e *PhysqError) WithDetail(key string, value interface{}) *PhysqError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PhysqError) WithDetails(details map[string]interface{}) *PhysqError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var physqErr *PhysqError
	if errors.As(err, &physqErr) {
		return physqErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PhysqError
func GetErrorCode(err error) ErrorCode {
	var physqErr *PhysqError
	if errors.As(err, &physqErr) {
		return physqErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PhysqError
func GetErrorDetails(err error) map[string]interface{} {
	var physqErr *PhysqError
	if errors.As(err, &physqErr) {
		return physqErr.Details
	}
	return nil
}
