package api

import (
	"time"

	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/service"
)

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the login response payload.
type LoginResponse struct {
	Token string `json:"token"`
}

// PatientRequest represents the create/update patient payload. Dates travel
// as ISO-8601 calendar dates (YYYY-MM-DD).
type PatientRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Address        string `json:"address" validate:"required"`
	DateOfBirth    string `json:"dateOfBirth" validate:"required"`
	RegisteredDate string `json:"registeredDate"`
}

// ToParams parses the wire-format dates and converts the request into
// service-layer parameters. forCreate requires registeredDate; updates
// ignore it.
func (req *PatientRequest) ToParams(forCreate bool) (service.PatientParams, error) {
	dob, err := time.Parse(domain.DateOnly, req.DateOfBirth)
	if err != nil {
		return service.PatientParams{}, domain.NewValidationError(
			"dateOfBirth", "must be YYYY-MM-DD", domain.ErrInvalidDate)
	}

	params := service.PatientParams{
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
		DateOfBirth: dob,
	}

	if forCreate {
		if req.RegisteredDate == "" {
			return service.PatientParams{}, domain.NewValidationError(
				"registeredDate", "is required", domain.ErrValidation)
		}
		registered, err := time.Parse(domain.DateOnly, req.RegisteredDate)
		if err != nil {
			return service.PatientParams{}, domain.NewValidationError(
				"registeredDate", "must be YYYY-MM-DD", domain.ErrInvalidDate)
		}
		params.RegisteredDate = registered
	}

	return params, nil
}

// PatientResponse represents a patient in API responses.
type PatientResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"dateOfBirth"`
}

// NewPatientResponse converts a domain patient into its response shape.
func NewPatientResponse(p *domain.Patient) PatientResponse {
	return PatientResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Email:       p.Email,
		Address:     p.Address,
		DateOfBirth: p.DateOfBirth.Format(domain.DateOnly),
	}
}

// NewPatientListResponse converts a slice of domain patients. It always
// returns a non-nil slice so an empty list serializes as [].
func NewPatientListResponse(patients []*domain.Patient) []PatientResponse {
	out := make([]PatientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, NewPatientResponse(p))
	}
	return out
}
