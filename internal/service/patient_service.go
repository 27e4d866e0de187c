package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/billing"
	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/store"
)

// PatientParams carries the already-validated field values for a patient
// create or update. Dates arrive parsed; wire-format parsing happens at
// the API layer.
type PatientParams struct {
	Name           string
	Email          string
	Address        string
	DateOfBirth    time.Time
	RegisteredDate time.Time // used on create only
}

// PatientService orchestrates patient CRUD, enforces the email-uniqueness
// invariant against the patient store, and provisions a billing account on
// creation.
type PatientService interface {
	// List retrieves all patients.
	List(ctx context.Context) ([]*domain.Patient, error)

	// Create persists a new patient and synchronously provisions a billing
	// account for it. Returns store.ErrEmailExists if the email is taken
	// and billing.ErrUnavailable (wrapped) if provisioning fails.
	Create(ctx context.Context, params PatientParams) (*domain.Patient, error)

	// Update modifies an existing patient's mutable fields.
	// Returns store.ErrPatientNotFound if the ID is unknown and
	// store.ErrEmailExists if the new email belongs to another patient.
	Update(ctx context.Context, id uuid.UUID, params PatientParams) (*domain.Patient, error)

	// Delete removes a patient by ID. Deleting an absent ID succeeds.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PatientServiceImpl implements the PatientService interface.
type PatientServiceImpl struct {
	patientStore  store.PatientStore
	billingClient billing.Client
	logger        *slog.Logger
}

// NewPatientService creates a new PatientService.
func NewPatientService(
	patientStore store.PatientStore,
	billingClient billing.Client,
	logger *slog.Logger,
) *PatientServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &PatientServiceImpl{
		patientStore:  patientStore,
		billingClient: billingClient,
		logger:        logger.With("component", "patient_service"),
	}
}

// Ensure PatientServiceImpl implements PatientService
var _ PatientService = (*PatientServiceImpl)(nil)

// List retrieves all patients. The full set is gathered and returned;
// there is no pagination.
func (s *PatientServiceImpl) List(ctx context.Context) ([]*domain.Patient, error) {
	patients, err := s.patientStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list patients", "error", err)
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}

	return patients, nil
}

// Create runs the patient-creation transaction:
//
//  1. fast-path uniqueness check against the store;
//  2. persist the new patient (the store's unique index is the
//     authoritative enforcement point for the race two concurrent creates
//     can produce);
//  3. strictly after the write commits, a synchronous billing RPC.
//
// If the billing call fails the whole create fails, but the patient row
// from step 2 is NOT rolled back: the record stays durably visible while
// no billing account exists for it. That at-least-once-persisted /
// at-most-once-billed window is inherent to the synchronous design;
// operators reconcile it out of band.
func (s *PatientServiceImpl) Create(ctx context.Context, params PatientParams) (*domain.Patient, error) {
	exists, err := s.patientStore.ExistsByEmail(ctx, params.Email)
	if err != nil {
		s.logger.Error("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, store.NewEmailExistsError(params.Email)
	}

	patient, err := domain.NewPatient(
		params.Name,
		params.Email,
		params.Address,
		params.DateOfBirth,
		params.RegisteredDate,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	if err := s.patientStore.Create(ctx, patient); err != nil {
		return nil, err
	}

	if _, err := s.billingClient.CreateBillingAccount(ctx, patient.ID.String(), patient.Name, patient.Email); err != nil {
		s.logger.Error("billing provisioning failed after patient commit",
			"error", err,
			"patient_id", patient.ID)
		return nil, fmt.Errorf("billing provisioning failed for patient %s: %w", patient.ID, err)
	}

	s.logger.Info("patient created",
		"patient_id", patient.ID)
	return patient, nil
}

// Update loads the patient by ID (failing fast if absent), re-checks the
// uniqueness invariant excluding the patient's own ID, then persists all
// mutable fields. Updating a patient to its own current email succeeds.
func (s *PatientServiceImpl) Update(ctx context.Context, id uuid.UUID, params PatientParams) (*domain.Patient, error) {
	patient, err := s.patientStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.patientStore.ExistsByEmailExceptID(ctx, params.Email, id)
	if err != nil {
		s.logger.Error("failed to check email existence", "error", err, "patient_id", id)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, store.NewEmailExistsError(params.Email)
	}

	patient.Name = params.Name
	patient.Email = params.Email
	patient.Address = params.Address
	patient.DateOfBirth = params.DateOfBirth

	if err := s.patientStore.Update(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Info("patient updated", "patient_id", id)
	return patient, nil
}

// Delete removes a patient by ID. The store treats deletion of an absent
// ID as a no-op success, and so does this method.
func (s *PatientServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.patientStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete patient", "error", err, "patient_id", id)
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	return nil
}
