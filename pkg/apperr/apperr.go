// Package apperr carries the error kinds the HTTP layer knows how to map:
// validation (400), not found (404) and store failures (500).
package apperr

import "errors"

// ErrValidation means a required field was missing or malformed. The store
// is never touched on this path.
var ErrValidation = errors.New("required field is missing")

type NotFoundError struct {
	Object string
}

func (e *NotFoundError) Error() string { return e.Object + " not found" }

func NotFound(object string) error { return &NotFoundError{Object: object} }

// Store wraps an opaque infrastructure failure. It is surfaced as a generic
// failure and never retried here.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store: " + e.Err.Error() }
func (e *StoreError) Unwrap() error { return e.Err }

func Store(err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Err: err}
}
