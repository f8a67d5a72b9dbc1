package notestore

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound matches failures caused by a 404 from the store.
var ErrNotFound = errors.New("note not found")

// Op names a store operation.
type Op string

const (
	OpList   Op = "list"
	OpGet    Op = "get"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Error is the single failure kind every store call returns.
type Error struct {
	Op     Op
	ID     string
	Status int // HTTP status, zero for transport failures
	Err    error
}

// Message is the short user-facing description of the failed operation.
func (e *Error) Message() string {
	switch e.Op {
	case OpList:
		return "Failed to fetch notes"
	case OpGet:
		return "Failed to fetch note"
	case OpCreate:
		return "Failed to create note"
	case OpUpdate:
		return "Failed to update note"
	case OpDelete:
		return "Failed to delete note"
	default:
		return "Note store request failed"
	}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message extracts the user-facing message from any error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Message()
	}
	return err.Error()
}

type statusError struct {
	method string
	path   string
	code   int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.method, e.path, e.code)
}

func (e *statusError) Is(target error) bool {
	return target == ErrNotFound && e.code == http.StatusNotFound
}

func wrapError(op Op, id string, err error) *Error {
	out := &Error{Op: op, ID: id, Err: err}
	var se *statusError
	if errors.As(err, &se) {
		out.Status = se.code
	}
	return out
}
