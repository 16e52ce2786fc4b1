// Package apperrors defines the error kinds the delivery layer maps to
// HTTP status codes. Repositories either pass these through untouched or
// wrap an unexpected store error exactly once in a DatabaseError.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that the target record does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict signals that the record already exists (singleton enforcement).
	ErrConflict = errors.New("resource already exists")

	// ErrCorruptRecord signals that a stored JSON sub-field failed to parse.
	// Surfaced to callers as a database-failure condition.
	ErrCorruptRecord = errors.New("corrupt record")

	// ErrInvalid signals a request that failed command validation.
	ErrInvalid = errors.New("invalid request")
)

// DatabaseError wraps an unexpected store error. It is never swallowed and
// never re-wrapped a second time.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database operation failed: %s: %v", e.Op, e.Err)
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

// Database wraps err as a DatabaseError unless it already carries one of the
// classified kinds, in which case it is returned unchanged.
func Database(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return err
	}
	var dbErr *DatabaseError
	if errors.As(err, &dbErr) {
		return err
	}
	return &DatabaseError{Op: op, Err: err}
}

// kindError carries a caller-facing message while matching one of the
// sentinel kinds through errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NotFound builds an ErrNotFound with a caller-facing message.
func NotFound(msg string) error {
	return &kindError{msg: msg, kind: ErrNotFound}
}

// NotFoundID builds an ErrNotFound for the given entity and id.
func NotFoundID(entity, id string) error {
	return NotFound(fmt.Sprintf("%s with ID %s not found", entity, id))
}

// Conflict builds an ErrConflict with a caller-facing message.
func Conflict(msg string) error {
	return &kindError{msg: msg, kind: ErrConflict}
}

// Invalid builds an ErrInvalid with a caller-facing message.
func Invalid(msg string) error {
	return &kindError{msg: msg, kind: ErrInvalid}
}

// CorruptRecord builds an ErrCorruptRecord for a stored sub-field that
// failed to parse.
func CorruptRecord(msg string) error {
	return &kindError{msg: msg, kind: ErrCorruptRecord}
}
