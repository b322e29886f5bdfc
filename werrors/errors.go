// Package werrors defines the stable, user-facing error taxonomy shared by
// every operation in this module, plus an envelope type rich enough for a
// calling surface (CLI, server) to render a helpful message without
// reaching back into validator internals.
package werrors

import (
	"fmt"
	"strings"
)

// Code is one of the stable taxonomy codes from the design.
type Code string

const (
	CodeInvalidJSON         Code = "WS_INVALID_JSON"
	CodeInvalidCapture      Code = "WS_INVALID_CAPTURE"
	CodeUnsupportedVersion  Code = "WS_UNSUPPORTED_VERSION"
	CodeLimitExceeded       Code = "WS_LIMIT_EXCEEDED"
	CodeInvalidArgs         Code = "WS_INVALID_ARGS"
	CodeNotFound            Code = "WS_NOT_FOUND"
	CodePermissionDenied    Code = "WS_PERMISSION_DENIED"
	CodeIOError             Code = "WS_IO_ERROR"
	CodeInternal            Code = "WS_INTERNAL"
)

// Issue is the minimal shape an Error needs from validate.Issue without
// importing that package (which in turn would create an import cycle,
// since validate imports werrors for its failure codes). validate copies
// its own Issue values into this type field by field when it builds an
// Error.
type Issue struct {
	Path     string
	Expected string
	Received string
	Message  string
}

// Error is the error envelope described in spec §6-7.
type Error struct {
	Code     Code
	Message  string
	Details  string
	Path     string
	Expected string
	Received string
	Hint     string
	Cause    error
	Issues   []Issue
}

// Error implements the error interface with a single-line rendering;
// Format produces the fuller, indented rendering for presentation layers.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap exposes Cause so callers can use errors.Is/errors.As across it.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// New builds a bare Error for a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap builds an Error that carries cause as its underlying error.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Format renders an error envelope as "[CODE] message" followed by
// indented optional lines for details, path, expected/received, hint, and
// cause — used only by presentation layers, never by core logic, which
// should keep working with the typed Error.
func Format(e *Error) string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		fmt.Fprintf(&b, "\n  details: %s", e.Details)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, "\n  path: %s", e.Path)
	}
	if e.Expected != "" || e.Received != "" {
		fmt.Fprintf(&b, "\n  expected: %s, received: %s", e.Expected, e.Received)
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "\n  hint: %s", e.Hint)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  cause: %s", e.Cause.Error())
	}
	for _, iss := range e.Issues {
		fmt.Fprintf(&b, "\n  issue: %s: %s (expected %s, received %s)",
			iss.Path, iss.Message, iss.Expected, iss.Received)
	}
	return b.String()
}
