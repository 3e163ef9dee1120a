package util

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks malformed user input (year specs, size bounds, tags).
var ErrInvalidInput = errors.New("invalid input")

// ErrorKind separates bad input from filesystem failures. Both are fatal.
type ErrorKind string

const (
	KindInput ErrorKind = "input"
	KindIO    ErrorKind = "io"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: file the operation touched
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InputError builds a KindInput error whose cause also matches ErrInvalidInput.
func InputError(op string, format string, args ...any) error {
	return &OpError{
		Op:   op,
		Kind: KindInput,
		Err:  fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)),
	}
}

// IOError builds a KindIO error for path.
func IOError(op string, path string, err error) error {
	return &OpError{Op: op, Kind: KindIO, Path: path, Err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}
