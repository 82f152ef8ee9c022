package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("state conflict")
	ErrMappingIncomplete = errors.New("column mapping incomplete: date, description and amount (or credit and debit) are required")
	ErrInvalidMapping    = errors.New("invalid column mapping")
	ErrDragInProgress    = errors.New("another transaction is already being dragged")
	ErrNothingToImport   = errors.New("no valid rows to import")
)

// FileFormatError reports an upload that cannot be read as a statement
type FileFormatError struct {
	Reason string
	Err    error
}

func (e *FileFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid statement file: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid statement file: %s", e.Reason)
}

func (e *FileFormatError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failure of the backing store.
// The operation named by Op can be retried as is.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Persistence wraps err unless it already carries a domain meaning
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return &PersistenceError{Op: op, Err: err}
}
