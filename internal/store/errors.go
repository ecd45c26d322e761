package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals that no session with the given id exists.
	ErrNotFound = errors.New("session not found")
)

// OpError wraps a failed store operation with enough context to log usefully.
type OpError struct {
	Op  string
	ID  string
	Err error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s session %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapErr(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, ID: id, Err: err}
}
