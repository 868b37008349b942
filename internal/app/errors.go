package app

import (
	"errors"
	"fmt"
)

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ConfigLoadFailed indicates the configuration could not be loaded.
	ConfigLoadFailed AppErrorType = iota
	// ScanFailed indicates the inventory could not be built.
	ScanFailed
	// TemplateNotFound indicates no template matched a query.
	TemplateNotFound
	// TemplateAmbiguous indicates several templates matched a query.
	TemplateAmbiguous
	// EncodeFailed indicates a template could not be encoded.
	EncodeFailed
	// ExportFailed indicates the inventory snapshot could not be written.
	ExportFailed
	// ValidationFailed indicates invalid user input.
	ValidationFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigLoadError creates a config load error.
func NewConfigLoadError(message string, cause error) *AppError {
	return NewAppError(ConfigLoadFailed, message, cause)
}

// NewScanError creates a scan error.
func NewScanError(message string, cause error) *AppError {
	return NewAppError(ScanFailed, message, cause)
}

// NewNotFoundError creates a template not found error.
func NewNotFoundError(query string) *AppError {
	return NewAppError(TemplateNotFound, fmt.Sprintf("no template matches %q", query), nil)
}

// NewValidationError creates a validation error.
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ValidationFailed, message, cause)
}

// IsType reports whether err is an AppError of the given type.
func IsType(err error, typ AppErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == typ
}
