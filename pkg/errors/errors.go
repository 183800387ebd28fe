// Package errors provides structured error reporting for the Aura toolkit.
//
// Library code that cannot return an error to the caller (property listeners,
// animation callbacks, layout warnings) reports through the global handler
// instead of writing to a logger directly, so host applications can route
// toolkit diagnostics wherever they want.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLayout indicates a layout configuration problem.
	KindLayout
	// KindTheme indicates a theme or theme pack error.
	KindTheme
	// KindAnimation indicates an animation error.
	KindAnimation
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLayout:
		return "layout"
	case KindTheme:
		return "theme"
	case KindAnimation:
		return "animation"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AuraError represents a structured error in the Aura toolkit.
type AuraError struct {
	// Op is the operation that failed (e.g., "theme.LoadPack").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AuraError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AuraError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "stacknav.transition").
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

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AuraError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
