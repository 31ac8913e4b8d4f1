package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// ConfigMissing indicates a required setting is missing or empty
	ConfigMissing ErrorCode = "CONFIG_MISSING"
	// AuthFailed indicates the credential file could not be loaded or was rejected
	AuthFailed ErrorCode = "AUTH_FAILED"
	// TabNotFound indicates the named tab (or the spreadsheet itself) does not exist
	TabNotFound ErrorCode = "TAB_NOT_FOUND"
	// SchemaMismatch indicates required columns are absent from the first data row
	SchemaMismatch ErrorCode = "SCHEMA_MISMATCH"
	// WriteFailed indicates an output artifact could not be written
	WriteFailed ErrorCode = "WRITE_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// ExportError represents a menuexport error with a stable code and message
type ExportError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new ExportError
func New(code ErrorCode, message string, cause error) *ExportError {
	return &ExportError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *ExportError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *ExportError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *ExportError) WithDetails(details interface{}) *ExportError {
	e.Details = details
	return e
}

// CodeOf returns the stable code carried by err, or InternalError for
// errors that did not originate in this taxonomy.
func CodeOf(err error) ErrorCode {
	if exportErr, ok := err.(*ExportError); ok {
		return exportErr.Code
	}
	return InternalError
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
