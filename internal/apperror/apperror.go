// Package apperror defines the tagged failure type shared by validators,
// resolvers and handlers, and the classifier that maps any error onto an
// HTTP status and a client-safe message.
package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
)

// Kind identifies the class of a failure
type Kind int

const (
	KindUnclassified Kind = iota
	KindInvalidType
	KindInvalidEnum
	KindNotFound
	KindMissingField
	KindStoreTypeError
)

// String returns the label used in logs and metrics
func (k Kind) String() string {
	switch k {
	case KindInvalidType:
		return "invalid_type"
	case KindInvalidEnum:
		return "invalid_enum"
	case KindNotFound:
		return "not_found"
	case KindMissingField:
		return "missing_field"
	case KindStoreTypeError:
		return "store_type_error"
	default:
		return "unclassified"
	}
}

// Status returns the HTTP status code for the kind
func (k Kind) Status() int {
	switch k {
	case KindInvalidType, KindInvalidEnum, KindMissingField, KindStoreTypeError:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

const (
	MsgInvalidDataType = "Invalid Data Type"
	MsgInternal        = "Internal server error"
	MsgPathNotFound    = "Path not found"
)

// Postgres SQLSTATE codes raised when a literal cannot be coerced to the column type
const (
	pqInvalidTextRepresentation = "22P02"
	pqNumericValueOutOfRange    = "22003"
)

// Error is a failure carrying the status and message sent to the client.
// Err holds the underlying cause, which is only ever logged.
type Error struct {
	Kind   Kind
	Status int
	Msg    string
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error whose status is derived from kind
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Status: kind.Status(), Msg: msg}
}

// Newf is New with a formatted message
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...))
}

// InvalidID reports a path identifier that is not a number
func InvalidID(entity string) *Error {
	return Newf(KindInvalidType, "%s ID must be a number", entity)
}

// NotFound reports an absent entity
func NotFound(format string, args ...interface{}) *Error {
	return Newf(KindNotFound, format, args...)
}

// Classify maps err onto an Error. Tagged errors pass through unchanged,
// store type mismatches become 400 and anything else becomes a generic 500.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqInvalidTextRepresentation, pqNumericValueOutOfRange:
			return &Error{Kind: KindStoreTypeError, Status: http.StatusBadRequest, Msg: MsgInvalidDataType, Err: err}
		}
	}

	return &Error{Kind: KindUnclassified, Status: http.StatusInternalServerError, Msg: MsgInternal, Err: err}
}
