// Package errors provides structured error reporting for the weft runtime.
//
// The runtime never returns errors from its public operations: contract
// violations panic at construction time, and every data-dependent condition
// is reported here and answered with a sentinel value or callback. Embedders
// install an ErrorHandler to route diagnostics wherever they want.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of a runtime diagnostic.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a failed render operation.
	KindRender
	// KindQuery indicates a selector with no match or invalid syntax.
	KindQuery
	// KindStyle indicates an imperative style helper misuse.
	KindStyle
	// KindEvent indicates an event registration or dispatch problem.
	KindEvent
	// KindCollect indicates a best-effort garbage collection failure.
	KindCollect
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindQuery:
		return "query"
	case KindStyle:
		return "style"
	case KindEvent:
		return "event"
	case KindCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// WeftError is a structured runtime diagnostic.
type WeftError struct {
	// Op is the operation that failed (e.g., "weft.Render").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Detail carries operation-specific context (a selector, an event
	// type, ...), if applicable.
	Detail string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *WeftError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s [%s] %s: %v", e.Op, e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *WeftError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives diagnostics reported by the weft runtime.
type ErrorHandler interface {
	HandleError(err *WeftError)
}
