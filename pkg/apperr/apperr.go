package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies engine failures so that callers can decide whether a
// retry makes sense without parsing error strings.
type Kind string

const (
	// InvalidInput means the request was malformed; nothing was mutated.
	InvalidInput Kind = "invalid_input"
	// InvalidTransition means a state-machine precondition was violated.
	InvalidTransition Kind = "invalid_transition"
	// InsufficientStock means the ledger check failed; nothing was debited.
	InsufficientStock Kind = "insufficient_stock"
	// Duplicate means a uniqueness constraint (plate, SKU, request id) was violated.
	Duplicate Kind = "duplicate"
	// NotFound means a referenced entity does not exist.
	NotFound Kind = "not_found"
	// Unavailable means a transient infrastructure failure; safe to retry.
	Unavailable Kind = "unavailable"
)

// Error carries a Kind alongside the wrapped cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with the given kind.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf builds an error of the given kind from a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the Kind from err, defaulting to Unavailable for
// anything the engine did not classify (storage failures and the like).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unavailable
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error kind to the status code the HTTP boundary returns.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case InvalidInput, InvalidTransition, InsufficientStock:
		return http.StatusBadRequest
	case Duplicate:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
