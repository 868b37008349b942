package scanner

import (
	"errors"
	"fmt"
)

// ErrSuperseded is returned by Refresher.Refresh when a newer refresh
// started before this one finished.
var ErrSuperseded = errors.New("scan superseded by a newer refresh")

// ScanErrorType represents the type of scan error.
type ScanErrorType int

const (
	// ScanRootUnreadable indicates a root directory could not be walked.
	ScanRootUnreadable ScanErrorType = iota
	// ScanDescriptorUnreadable indicates a descriptor file could not be read.
	ScanDescriptorUnreadable
	// ScanDescriptorSyntax indicates a descriptor is not a valid document.
	ScanDescriptorSyntax
)

// String returns the string representation of the error type.
func (t ScanErrorType) String() string {
	switch t {
	case ScanRootUnreadable:
		return "RootUnreadable"
	case ScanDescriptorUnreadable:
		return "DescriptorUnreadable"
	case ScanDescriptorSyntax:
		return "DescriptorSyntax"
	default:
		return "Unknown"
	}
}

// ScanError describes why a root or bundle was skipped.
type ScanError struct {
	// Type is the error type classification.
	Type ScanErrorType
	// Message is the human-readable error message.
	Message string
	// Path is the root or descriptor path.
	Path string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scan error [%s] for '%s': %s (caused by: %v)",
			e.Type.String(), e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("scan error [%s] for '%s': %s", e.Type.String(), e.Path, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ScanError) Unwrap() error {
	return e.Cause
}

// NewScanError creates a new ScanError.
func NewScanError(typ ScanErrorType, path, message string, cause error) *ScanError {
	return &ScanError{
		Type:    typ,
		Message: message,
		Path:    path,
		Cause:   cause,
	}
}

// NewRootError creates a root unreadable error.
func NewRootError(path string, cause error) *ScanError {
	return NewScanError(ScanRootUnreadable, path, "cannot walk root directory", cause)
}

// NewUnreadableError creates a descriptor unreadable error.
func NewUnreadableError(path string, cause error) *ScanError {
	return NewScanError(ScanDescriptorUnreadable, path, "cannot read descriptor", cause)
}

// NewSyntaxError creates a descriptor syntax error.
func NewSyntaxError(path string, cause error) *ScanError {
	return NewScanError(ScanDescriptorSyntax, path, "descriptor is not a valid document", cause)
}
