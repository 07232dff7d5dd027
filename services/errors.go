package services

import "errors"

var (
	// ErrNotFound means no record exists for the requested read, as opposed
	// to a record whose values happen to be zero.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the record exists but belongs to another user.
	ErrForbidden = errors.New("not authorized")
)

// ValidationError rejects malformed input (negative amounts, bad dates,
// missing required fields). It is returned to the caller unmodified.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) error { return &ValidationError{Msg: msg} }
