// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// errors.go — sentinel errors and the typed parameter error.
//
// Error policy (explicit and strict):
//   • Semantics are carried by package-level sentinels; callers MUST branch
//     with errors.Is(err, ErrX), never by matching strings.
//   • Parameter failures are reported as *ParamError, which records the
//     offending (components, component_size, gate_size) triple and unwraps
//     to its sentinel. Use errors.As to read the values back.
//   • Construction never panics at runtime; option constructors (WithX) may.

package builder

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that a size parameter is outside its domain:
// negative component count, component size below one, negative gate size, or
// a zero gate size while gates are required (components ≥ 2). It also covers
// structural misuse such as a gate list that does not match the pairings.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* report bad input */ }.
var ErrInvalidArgument = errors.New("builder: invalid argument")

// ErrSizeMismatch indicates that one half of a gate holds more nodes than the
// component it must attach to, so positional wiring would run past the end
// of the component.
// Usage: if errors.Is(err, ErrSizeMismatch) { /* grow components or shrink gates */ }.
var ErrSizeMismatch = errors.New("builder: gate half exceeds component size")

// ErrConstructFailed indicates that BuildGraph received an unusable
// constructor (nil) or target graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ParamError reports a rejected parameter triple together with the method
// that rejected it. Err is always one of the package sentinels.
type ParamError struct {
	Method        string
	Components    int
	ComponentSize int
	GateSize      int
	Reason        string
	Err           error
}

// Error renders "<Method>: <reason> (components=n, component_size=s, gate_size=g): <sentinel>".
func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s (components=%d, component_size=%d, gate_size=%d): %v",
		e.Method, e.Reason, e.Components, e.ComponentSize, e.GateSize, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ParamError) Unwrap() error { return e.Err }

// paramErrorf builds a *ParamError for (n,s,g) with a formatted reason.
func paramErrorf(method string, n, s, g int, sentinel error, format string, args ...interface{}) *ParamError {
	return &ParamError{
		Method:        method,
		Components:    n,
		ComponentSize: s,
		GateSize:      g,
		Reason:        fmt.Sprintf(format, args...),
		Err:           sentinel,
	}
}

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; a trailing
// %w in format keeps the wrapped error reachable through errors.Is.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf(method+": "+format, args...)
}
