package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/clinic-api/internal/domain"
)

var (
	testDOB        = time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	testRegistered = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
)

func TestNewPatient(t *testing.T) {
	t.Parallel()

	patient, err := domain.NewPatient(
		"John Doe",
		"john.doe@example.com",
		"123 Main Street",
		testDOB,
		testRegistered,
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.Equal(t, "John Doe", patient.Name)
	assert.Equal(t, testDOB, patient.DateOfBirth)
	assert.Equal(t, testRegistered, patient.RegisteredDate)
	assert.False(t, patient.CreatedAt.IsZero())
	assert.Equal(t, patient.CreatedAt, patient.UpdatedAt)
}

func TestNewPatient_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pname   string
		email   string
		address string
		dob     time.Time
		wantErr error
	}{
		{
			name:    "empty name",
			pname:   "",
			email:   "john.doe@example.com",
			address: "123 Main Street",
			dob:     testDOB,
			wantErr: domain.ErrEmptyPatientName,
		},
		{
			name:    "empty email",
			pname:   "John Doe",
			email:   "",
			address: "123 Main Street",
			dob:     testDOB,
			wantErr: domain.ErrEmptyEmail,
		},
		{
			name:    "malformed email",
			pname:   "John Doe",
			email:   "not-an-email",
			address: "123 Main Street",
			dob:     testDOB,
			wantErr: domain.ErrInvalidEmail,
		},
		{
			name:    "empty address",
			pname:   "John Doe",
			email:   "john.doe@example.com",
			address: "",
			dob:     testDOB,
			wantErr: domain.ErrEmptyAddress,
		},
		{
			name:    "zero date of birth",
			pname:   "John Doe",
			email:   "john.doe@example.com",
			address: "123 Main Street",
			dob:     time.Time{},
			wantErr: domain.ErrZeroDateOfBirth,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewPatient(tc.pname, tc.email, tc.address, tc.dob, testRegistered)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"john.doe@example.com", true},
		{"a@b.co", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"john@", false},
		{"john@nodot", false},
		{"john@.com", false},
		{"john@example.", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, domain.ValidEmail(tc.email))
		})
	}
}
