package service

import (
	"errors"
	"fmt"
)

// Common service errors shared by the CRUD services.
var (
	// ErrPermissionDenied indicates the caller lacks the ownership or role
	// required for the operation.
	ErrPermissionDenied = errors.New("insufficient permissions")

	// ErrConflict indicates a referential-integrity violation: a referenced
	// user, team, or role does not exist, or a uniqueness rule was broken.
	ErrConflict = errors.New("conflict")
)

// ServiceError is a custom error type for service failures with operation
// context.
type ServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
