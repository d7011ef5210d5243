package store

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrGradeNotFound indicates that the requested grade does not exist in the store.
	ErrGradeNotFound = fmt.Errorf("%w: grade", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// GradeNotFoundError names the grade an operation could not find.
// It matches ErrGradeNotFound and ErrNotFound with errors.Is.
type GradeNotFoundError struct {
	ID        uuid.UUID
	Operation string
}

// Error implements the error interface.
func (e *GradeNotFoundError) Error() string {
	if e.Operation == "" {
		return fmt.Sprintf("grade %s not found", e.ID)
	}
	return fmt.Sprintf("%s: grade %s not found", e.Operation, e.ID)
}

// Unwrap returns ErrGradeNotFound.
func (e *GradeNotFoundError) Unwrap() error {
	return ErrGradeNotFound
}

// NewGradeNotFoundError reports that operation found no grade with id.
func NewGradeNotFoundError(operation string, id uuid.UUID) *GradeNotFoundError {
	return &GradeNotFoundError{ID: id, Operation: operation}
}
