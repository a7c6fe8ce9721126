package graphio

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the typed errors below.
var (
	ErrConfig   = errors.New("graphio: invalid parameter line")
	ErrFormat   = errors.New("graphio: malformed line")
	ErrNotFound = errors.New("graphio: file not found")
)

// ConfigError reports a parameter line that is not two non-negative integers.
type ConfigError struct {
	Text   string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("graphio: parameter line %q: %s", e.Text, e.Reason)
}

// Is matches ErrConfig.
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// FormatError reports a malformed line. Line is 1-based.
type FormatError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("graphio: line %d %q: %s: %v", e.Line, e.Text, e.Reason, e.Err)
	}
	return fmt.Sprintf("graphio: line %d %q: %s", e.Line, e.Text, e.Reason)
}

// Is matches ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// Unwrap exposes the underlying graph error, if any.
func (e *FormatError) Unwrap() error { return e.Err }

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("graphio: %s: file not found", e.Path)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Unwrap exposes the underlying fs error.
func (e *NotFoundError) Unwrap() error { return e.Err }
