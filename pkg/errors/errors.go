package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DestroyedError reports use of a controller, slot or facade after its owner
// was torn down. It is raised through panic, never returned: a callback that
// outlives its owner would write into host state that now belongs to another
// widget.
type DestroyedError struct {
	Component string
	Op        string
}

// NewDestroyedError constructs a DestroyedError.
func NewDestroyedError(component, op string) error {
	return &DestroyedError{Component: component, Op: op}
}

func (e *DestroyedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("use after destroy: %s.%s", e.Component, e.Op)
	}
	return fmt.Sprintf("use after destroy: %s", e.Component)
}

// AbortIfDestroyed panics with a DestroyedError when destroyed is true.
func AbortIfDestroyed(destroyed bool, component, op string) {
	if destroyed {
		panic(NewDestroyedError(component, op))
	}
}
