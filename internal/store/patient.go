package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/domain"
)

// PatientStore defines the interface for patient record persistence.
//
// The email-uniqueness invariant is enforced twice: ExistsByEmail /
// ExistsByEmailExceptID give the service a fast, friendly error path, and
// the store's unique index is the authoritative backstop for the race
// between two concurrent writes. Create and Update translate the index
// violation into ErrEmailExists so both paths look identical to callers.
type PatientStore interface {
	// List retrieves all patients. The result is finite and gathered in
	// full; no pagination is applied.
	List(ctx context.Context) ([]*domain.Patient, error)

	// GetByID retrieves a patient by their unique ID.
	// Returns ErrPatientNotFound if the patient does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)

	// Create saves a new patient to the store.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain Patient if data is invalid.
	Create(ctx context.Context, patient *domain.Patient) error

	// Update modifies an existing patient's mutable fields
	// (name, email, address, date of birth).
	// Returns ErrPatientNotFound if the patient does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, patient *domain.Patient) error

	// Delete removes a patient from the store by their ID.
	// Deleting an absent ID is a no-op success, matching the underlying
	// store semantics.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail reports whether any patient has the given email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByEmailExceptID reports whether a patient other than the one
	// with the given ID has the given email. Used by update so a patient
	// can keep its own email.
	ExistsByEmailExceptID(ctx context.Context, email string, id uuid.UUID) (bool, error)
}
