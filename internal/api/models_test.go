package api_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/clinic-api/internal/api"
	"github.com/clinichub/clinic-api/internal/domain"
)

func TestPatientRequestToParams(t *testing.T) {
	t.Parallel()

	req := api.PatientRequest{
		Name:           "John Doe",
		Email:          "john.doe@example.com",
		Address:        "123 Main Street",
		DateOfBirth:    "1990-05-20",
		RegisteredDate: "2024-01-15",
	}

	params, err := req.ToParams(true)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", params.Name)
	assert.Equal(t, "john.doe@example.com", params.Email)
	assert.Equal(t, "123 Main Street", params.Address)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), params.DateOfBirth)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), params.RegisteredDate)
}

func TestPatientRequestToParams_UpdateIgnoresRegisteredDate(t *testing.T) {
	t.Parallel()

	req := api.PatientRequest{
		Name:        "John Doe",
		Email:       "john.doe@example.com",
		Address:     "123 Main Street",
		DateOfBirth: "1990-05-20",
	}

	params, err := req.ToParams(false)
	require.NoError(t, err)
	assert.True(t, params.RegisteredDate.IsZero())
}

func TestPatientRequestToParams_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mutate    func(*api.PatientRequest)
		forCreate bool
		wantErr   error
	}{
		{
			name:      "bad date of birth",
			mutate:    func(r *api.PatientRequest) { r.DateOfBirth = "20/05/1990" },
			forCreate: true,
			wantErr:   domain.ErrInvalidDate,
		},
		{
			name:      "bad registered date",
			mutate:    func(r *api.PatientRequest) { r.RegisteredDate = "yesterday" },
			forCreate: true,
			wantErr:   domain.ErrInvalidDate,
		},
		{
			name:      "missing registered date on create",
			mutate:    func(r *api.PatientRequest) { r.RegisteredDate = "" },
			forCreate: true,
			wantErr:   domain.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := validPatientRequest()
			tc.mutate(&req)

			_, err := req.ToParams(tc.forCreate)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// The request-to-entity-to-response path must preserve every field a
// client submits, with dates rendered back in the same wire format.
func TestPatientDTORoundTrip(t *testing.T) {
	t.Parallel()

	req := api.PatientRequest{
		Name:           "Jane Doe",
		Email:          "jane.doe@example.com",
		Address:        "456 Oak Avenue",
		DateOfBirth:    "1985-12-01",
		RegisteredDate: "2024-03-10",
	}

	params, err := req.ToParams(true)
	require.NoError(t, err)

	patient, err := domain.NewPatient(
		params.Name,
		params.Email,
		params.Address,
		params.DateOfBirth,
		params.RegisteredDate,
	)
	require.NoError(t, err)

	resp := api.NewPatientResponse(patient)
	assert.Equal(t, patient.ID.String(), resp.ID)
	assert.Equal(t, "Jane Doe", resp.Name)
	assert.Equal(t, "jane.doe@example.com", resp.Email)
	assert.Equal(t, "456 Oak Avenue", resp.Address)
	assert.Equal(t, "1985-12-01", resp.DateOfBirth)
}

func TestNewPatientListResponse_EmptySerializesAsArray(t *testing.T) {
	t.Parallel()

	resp := api.NewPatientListResponse(nil)
	require.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestNewPatientResponse_Dates(t *testing.T) {
	t.Parallel()

	p := &domain.Patient{
		ID:          uuid.New(),
		Name:        "Jane Doe",
		Email:       "jane.doe@example.com",
		Address:     "456 Oak Avenue",
		DateOfBirth: time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC),
	}

	resp := api.NewPatientResponse(p)
	assert.Equal(t, "1985-12-01", resp.DateOfBirth)
	assert.Equal(t, p.ID.String(), resp.ID)
}
