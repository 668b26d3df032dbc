// Package errors provides structured error handling for the fluent packages.
//
// Operations that receive an argument outside the range implied by its
// generating sequence (a wheel index past the end of a month, an unknown
// display mode name) return a *FluentError of kind KindInvalidArgument.
// Such errors match ErrInvalidArgument with the standard library's errors.Is:
//
//	if _, err := datepicker.ApplyDayChange(d, 31); errors.Is(err, fluenterrors.ErrInvalidArgument) {
//	    // programming error at the call site
//	}
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindInvalidArgument indicates a contract violation by the caller.
	KindInvalidArgument
	// KindConfig indicates a configuration loading or validation failure.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrInvalidArgument is matched by every FluentError of kind KindInvalidArgument.
var ErrInvalidArgument = stderrors.New("invalid argument")

// FluentError represents a structured error.
type FluentError struct {
	// Op is the operation that failed (e.g., "datepicker.ApplyDayChange").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error was reported.
	Timestamp time.Time
}

func (e *FluentError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FluentError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for this error's kind.
func (e *FluentError) Is(target error) bool {
	return target == ErrInvalidArgument && e.Kind == KindInvalidArgument
}

// InvalidArgument returns a KindInvalidArgument error for op.
func InvalidArgument(op, format string, args ...any) error {
	return &FluentError{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf(format, args...),
	}
}

// Config wraps err as a KindConfig error for op.
func Config(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FluentError{Op: op, Kind: KindConfig, Err: err}
}

// KindOf returns the kind of the first FluentError in err's chain.
func KindOf(err error) ErrorKind {
	var fe *FluentError
	if stderrors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.Execute").
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

// ErrorHandler receives reported errors.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *FluentError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
