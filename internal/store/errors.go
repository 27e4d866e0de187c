package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g., ErrUserNotFound, ErrPatientNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a patient with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrPatientNotFound indicates that the requested patient does not exist in the store.
	ErrPatientNotFound = fmt.Errorf("%w: patient", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a record with the given email already
	// exists. Both the fast-path existence check and the unique-index
	// violation translate to this error so callers see a single error kind.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// EmailExistsError carries the conflicting email address so the API layer
// can name it in the 409 response. It matches ErrEmailExists (and therefore
// ErrDuplicate) under errors.Is.
type EmailExistsError struct {
	Email string
}

// Error implements the error interface.
func (e *EmailExistsError) Error() string {
	return ErrEmailExists.Error() + ": " + e.Email
}

// Unwrap returns ErrEmailExists to support errors.Is checks.
func (e *EmailExistsError) Unwrap() error {
	return ErrEmailExists
}

// NewEmailExistsError creates an EmailExistsError for the given address.
func NewEmailExistsError(email string) *EmailExistsError {
	return &EmailExistsError{Email: email}
}

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
