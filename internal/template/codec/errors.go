package codec

import "fmt"

// SyntaxError reports a descriptor that cannot be parsed at all.
type SyntaxError struct {
	// Path is the descriptor file path, when known.
	Path string
	// Message is the human-readable error message.
	Message string
	// Cause is the underlying parser error, if any.
	Cause error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	where := e.Path
	if where == "" {
		where = "document"
	}
	if e.Cause != nil {
		return fmt.Sprintf("syntax error in %s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("syntax error in %s: %s", where, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// NewSyntaxError creates a new SyntaxError.
func NewSyntaxError(path, message string, cause error) *SyntaxError {
	return &SyntaxError{
		Path:    path,
		Message: message,
		Cause:   cause,
	}
}
