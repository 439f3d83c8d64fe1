// Package errors provides structured error reporting for the scrollto
// library. Bindings run inside a host's event loop, so failures are reported
// to a process-wide handler instead of being returned up a call stack that
// belongs to the host.
package errors

import (
	"fmt"
	"time"
)

// Kind categorizes an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindHost indicates a failure in a host capability call (DOM bridge,
	// scroll primitive, fragment update).
	KindHost
	// KindConfig indicates invalid or unparseable configuration.
	KindConfig
	// KindBinding indicates a failure wiring a binding into its framework.
	KindBinding
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindHost:
		return "host"
	case KindConfig:
		return "config"
	case KindBinding:
		return "binding"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error is a structured error in the scrollto library.
type Error struct {
	// Op is the operation that failed (e.g. "web.Mount").
	Op string
	// Kind categorizes the error.
	Kind Kind
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

// PanicError is a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g. "scroll.Controller.Activate").
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
