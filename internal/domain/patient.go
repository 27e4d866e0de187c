package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Patient validation errors
var (
	ErrEmptyPatientID   = errors.New("patient ID cannot be empty")
	ErrEmptyPatientName = errors.New("patient name cannot be empty")
	ErrEmptyAddress     = errors.New("address cannot be empty")
	ErrZeroDateOfBirth  = errors.New("date of birth cannot be empty")
)

// DateOnly is the wire format for the date fields on a patient
// (date of birth, registration date).
const DateOnly = "2006-01-02"

// Patient represents a registered patient of the clinic.
// The email address is unique across all patients; the in-service
// existence check is a fast path and the store's unique index is the
// authoritative enforcement point.
type Patient struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	DateOfBirth    time.Time `json:"date_of_birth"`
	RegisteredDate time.Time `json:"registered_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewPatient creates a new Patient from already-parsed field values.
// It generates the patient ID and sets the bookkeeping timestamps.
// Returns an error if validation fails.
func NewPatient(name, email, address string, dateOfBirth, registeredDate time.Time) (*Patient, error) {
	now := time.Now().UTC()
	patient := &Patient{
		ID:             uuid.New(),
		Name:           name,
		Email:          email,
		Address:        address,
		DateOfBirth:    dateOfBirth,
		RegisteredDate: registeredDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := patient.Validate(); err != nil {
		return nil, err
	}

	return patient, nil
}

// Validate checks if the Patient has valid data.
// Returns an error if any field fails validation.
func (p *Patient) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPatientID
	}

	if p.Name == "" {
		return ErrEmptyPatientName
	}

	if p.Email == "" {
		return ErrEmptyEmail
	}

	if !ValidEmail(p.Email) {
		return ErrInvalidEmail
	}

	if p.Address == "" {
		return ErrEmptyAddress
	}

	if p.DateOfBirth.IsZero() {
		return ErrZeroDateOfBirth
	}

	return nil
}
