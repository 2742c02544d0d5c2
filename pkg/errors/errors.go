// Package errors provides structured error handling for expandable containers.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidConfiguration indicates a programming error such as an
	// orientation outside the recognized values or a negative duration.
	KindInvalidConfiguration
	// KindStaleChild indicates an operation on a child that is no longer tracked.
	KindStaleChild
	// KindConfigLoad indicates a declarative configuration could not be read or parsed.
	KindConfigLoad
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidConfiguration:
		return "invalid_configuration"
	case KindStaleChild:
		return "stale_child"
	case KindConfigLoad:
		return "config_load"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel causes wrapped by Error. Match them with errors.Is.
var (
	ErrInvalidOrientation = errors.New("orientation must be horizontal or vertical")
	ErrInvalidDirection   = errors.New("direction must be ltr or rtl")
	ErrNegativeDuration   = errors.New("duration must not be negative")
	ErrUnknownEasing      = errors.New("unknown easing curve")
	ErrUnknownChild       = errors.New("child is not attached")
	ErrUnknownKind        = errors.New("unknown expander kind")
	ErrParallaxRange      = errors.New("parallax must be within [0, 1]")
	ErrDuplicateName      = errors.New("duplicate expander name")
	ErrMissingName        = errors.New("expander name is required")
)

// Error represents a structured error raised by an expander or its configuration.
type Error struct {
	// Op is the operation that failed (e.g., "expander.Frame.SetOrientation").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidConfiguration wraps err as a KindInvalidConfiguration error for op.
func InvalidConfiguration(op string, err error) *Error {
	return &Error{Op: op, Kind: KindInvalidConfiguration, Err: err, Timestamp: time.Now()}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "expander.Frame.listener").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors that cannot be returned to a caller.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
