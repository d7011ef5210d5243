package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrGradeNotFound indicates the requested grade does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrGradeNotFound = errors.New("grade not found")

	// ErrEmptyUpdate indicates an update that sets no field.
	// API layer should map this to HTTP 400 Bad Request.
	ErrEmptyUpdate = errors.New("update contains no fields")
)

// GradeServiceError is a custom error type for grade service errors.
type GradeServiceError struct {
	// Operation is the operation that failed (e.g., "update_grade")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for GradeServiceError.
func (e *GradeServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grade service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("grade service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GradeServiceError) Unwrap() error {
	return e.Err
}

// NewGradeServiceError creates a new GradeServiceError.
func NewGradeServiceError(operation, message string, err error) *GradeServiceError {
	return &GradeServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
