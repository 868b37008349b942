package config

import (
	"errors"
	"fmt"
)

// ConfigErrorType classifies configuration errors.
type ConfigErrorType int

const (
	// ConfigNotFound means the configuration file does not exist.
	ConfigNotFound ConfigErrorType = iota
	// ConfigInvalid means a file or environment value could not be read or parsed.
	ConfigInvalid
	// ConfigValidationFailed means a parsed value is out of range.
	ConfigValidationFailed
)

func (t ConfigErrorType) String() string {
	switch t {
	case ConfigNotFound:
		return "NotFound"
	case ConfigInvalid:
		return "Invalid"
	case ConfigValidationFailed:
		return "ValidationFailed"
	default:
		return "Unknown"
	}
}

// ConfigError reports a problem with one configuration source.
type ConfigError struct {
	Type ConfigErrorType
	// Source is the file path or environment variable the value came
	// from. Empty for values that failed validation after merging.
	Source string
	// Field is the dotted JSON path of the offending setting, if known.
	Field   string
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	where := "configuration error"
	if e.Source != "" {
		where += " in " + e.Source
	}
	if e.Field != "" {
		where += " [field: " + e.Field + "]"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", where, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", where, e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewNotFoundError reports a missing configuration file.
func NewNotFoundError(path string, cause error) *ConfigError {
	return &ConfigError{Type: ConfigNotFound, Source: path, Message: "configuration file not found", Cause: cause}
}

// NewInvalidError reports a source that could not be read, parsed or written.
func NewInvalidError(source, message string, cause error) *ConfigError {
	return &ConfigError{Type: ConfigInvalid, Source: source, Message: message, Cause: cause}
}

// NewEnvError reports an environment variable whose value does not parse
// as the type of field.
func NewEnvError(name, field, message string, cause error) *ConfigError {
	return &ConfigError{Type: ConfigInvalid, Source: name, Field: field, Message: message, Cause: cause}
}

// NewFieldError reports a setting that failed validation.
func NewFieldError(field, message string, cause error) *ConfigError {
	return &ConfigError{Type: ConfigValidationFailed, Field: field, Message: message, Cause: cause}
}

// IsNotFound reports whether err is, or wraps, a ConfigNotFound error.
func IsNotFound(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr) && cfgErr.Type == ConfigNotFound
}
