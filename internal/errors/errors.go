package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeConfiguration indicates a conversion was assembled without one of
	// its required behaviors. It is a programming defect, not a runtime condition.
	CodeConfiguration Code = "configuration"

	// CodeArithmetic indicates a numeric operation could not produce a value
	CodeArithmetic Code = "arithmetic"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// Keep the code of our own errors
	var convErr *Error
	if errors.As(err, &convErr) {
		return &Error{
			Code:    convErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(convErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Configuration creates a configuration error
func Configuration(message string) *Error {
	return New(CodeConfiguration, message)
}

// Configurationf creates a formatted configuration error
func Configurationf(format string, args ...any) *Error {
	return Newf(CodeConfiguration, format, args...)
}

// Arithmetic creates an arithmetic error
func Arithmetic(message string) *Error {
	return New(CodeArithmetic, message)
}

// Arithmeticf creates a formatted arithmetic error
func Arithmeticf(format string, args ...any) *Error {
	return Newf(CodeArithmetic, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Code == code
	}
	return false
}

// IsConfiguration checks if the error is a configuration error
func IsConfiguration(err error) bool {
	return Is(err, CodeConfiguration)
}

// IsArithmetic checks if the error is an arithmetic error
func IsArithmetic(err error) bool {
	return Is(err, CodeArithmetic)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var convErr *Error
	if errors.As(err, &convErr) {
		return convErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
