package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies expected failures so callers can map them to a
// transport status without inspecting messages.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindFailure
)

// Error is the tagged result every use case returns for expected
// conditions. Validation errors may carry per-field messages.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Fields))
	for field, msgs := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, "; ")))
	}
	return e.Message + " (" + strings.Join(parts, ", ") + ")"
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: "validation", Message: msg}
}

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// FieldErrors builds a validation error from per-field messages.
func FieldErrors(fields map[string][]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Code:    "validation",
		Message: "invalid input",
		Fields:  fields,
	}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Code: "not_found", Message: msg}
}

func NotFoundf(format string, args ...any) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Code: "conflict", Message: msg}
}

// ErrInternal is what leaves a use case when the store fails in a way the
// workflow cannot interpret. The cause is logged, never surfaced.
var ErrInternal = &Error{Kind: KindFailure, Code: "internal", Message: "internal error"}

// KindOf extracts the error kind; anything that is not a domain error is an
// unexpected failure.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindFailure
}
