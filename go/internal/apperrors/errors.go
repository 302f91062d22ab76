// Package apperrors defines the error kinds callers branch on. Handlers map
// kinds to transport status codes; apps return them instead of raw storage
// errors so the UI can tell "not your turn" apart from "already taken".
package apperrors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies an error for callers.
type Kind string

const (
	// KindNotFound means the referenced entity does not exist.
	KindNotFound Kind = "not_found"
	// KindForbidden means the caller is authenticated but not allowed,
	// including turn violations during a draft.
	KindForbidden Kind = "forbidden"
	// KindInvalidState means the operation is illegal for the current
	// league or draft status.
	KindInvalidState Kind = "invalid_state"
	// KindConflict means a uniqueness or race was lost, or a duplicate
	// start was attempted. The client should refresh and retry fresh.
	KindConflict Kind = "conflict"
	// KindValidation means malformed input.
	KindValidation Kind = "validation"
	// KindDegraded means an external feed had no data; results are zeroed
	// rather than failed.
	KindDegraded Kind = "degraded"
	// KindInternal is everything else.
	KindInternal Kind = "internal"
)

// Error carries a kind plus a caller-facing message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an Error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func NotFound(entity string) *Error {
	return &Error{Kind: KindNotFound, Msg: entity + " not found"}
}

func Forbidden(msg string) *Error {
	return &Error{Kind: KindForbidden, Msg: msg}
}

func InvalidState(msg string) *Error {
	return &Error{Kind: KindInvalidState, Msg: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Msg: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// KindOf extracts the kind from err, or KindInternal if it has none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

// FromPg reclassifies storage-level errors: a unique constraint violation is
// a lost race and surfaces as Conflict, never as a raw storage error.
func FromPg(err error, conflictMsg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return &Error{Kind: KindConflict, Msg: conflictMsg, Err: err}
	}
	return err
}
