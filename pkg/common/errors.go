package common

import (
	"fmt"
	"strings"
)

// Kind categorizes a conversion failure
type Kind string

const (
	KindInvalidInput       Kind = "invalid_input"       // too short, wrong size or bad magic
	KindUnsupportedVersion Kind = "unsupported_version" // marker present with an unknown version
	KindDetectionFailed    Kind = "detection_failed"    // auto mode could not classify the input
	KindLeftoversMissing   Kind = "leftovers_missing"   // sidecar requested but absent
	KindIOFailure          Kind = "io_failure"          // sidecar read/write failure
)

// Sentinel errors for errors.Is matching by kind.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrUnsupportedVersion = &Error{Kind: KindUnsupportedVersion}
	ErrDetectionFailed    = &Error{Kind: KindDetectionFailed}
	ErrLeftoversMissing   = &Error{Kind: KindLeftoversMissing}
	ErrIOFailure          = &Error{Kind: KindIOFailure}
)

// Error is the structured error returned by the converter
type Error struct {
	Cause  error
	Kind   Kind
	Op     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// NewError creates an error of the given kind with a formatted detail message
func NewError(kind Kind, op, detail string, args ...interface{}) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Kind: kind, Op: op, Detail: detail}
}

// WrapError creates an error of the given kind around cause
func WrapError(kind Kind, op, detail string, cause error) *Error {
	return &Error{Kind: kind, Op: op, Detail: detail, Cause: cause}
}

// InvalidInput creates an invalid input error
func InvalidInput(op, detail string, args ...interface{}) *Error {
	return NewError(KindInvalidInput, op, detail, args...)
}

// IOFailure wraps a filesystem error
func IOFailure(op, detail string, cause error) *Error {
	return WrapError(KindIOFailure, op, detail, cause)
}

// KindOf returns the kind of err, or "" when err is not a converter error
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
