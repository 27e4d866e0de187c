package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/clinic-api/internal/billing"
	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/mocks"
	"github.com/clinichub/clinic-api/internal/service"
	"github.com/clinichub/clinic-api/internal/store"
)

func testParams() service.PatientParams {
	return service.PatientParams{
		Name:           "John Doe",
		Email:          "john.doe@example.com",
		Address:        "123 Main Street",
		DateOfBirth:    time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		RegisteredDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_Success(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	billingClient := &mocks.MockBillingClient{}
	svc := service.NewPatientService(patients, billingClient, nil)

	patient, err := svc.Create(context.Background(), testParams())
	require.NoError(t, err)
	require.NotNil(t, patient)
	assert.NotEqual(t, uuid.Nil, patient.ID)
	assert.Equal(t, "john.doe@example.com", patient.Email)

	// The patient is persisted and billing was asked to provision
	// exactly once, with the patient's ID.
	require.Len(t, billingClient.Calls, 1)
	assert.Equal(t, patient.ID.String(), billingClient.Calls[0])

	stored, err := patients.GetByID(context.Background(), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, patient, stored)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	billingClient := &mocks.MockBillingClient{}
	svc := service.NewPatientService(patients, billingClient, nil)

	_, err := svc.Create(context.Background(), testParams())
	require.NoError(t, err)

	params := testParams()
	params.Name = "Someone Else"
	_, err = svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, store.ErrEmailExists)

	// Billing must not be invoked for the rejected create.
	assert.Len(t, billingClient.Calls, 1)
}

func TestCreate_BillingFailureKeepsPatientRow(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	billingClient := &mocks.MockBillingClient{
		Err: billing.ErrUnavailable,
	}
	svc := service.NewPatientService(patients, billingClient, nil)

	_, err := svc.Create(context.Background(), testParams())
	require.Error(t, err)
	assert.ErrorIs(t, err, billing.ErrUnavailable)

	// The write is not rolled back: the row stays visible even though
	// no billing account exists for it.
	all, err := patients.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "john.doe@example.com", all[0].Email)
}

func TestCreate_InvalidEntity(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	billingClient := &mocks.MockBillingClient{}
	svc := service.NewPatientService(patients, billingClient, nil)

	params := testParams()
	params.Name = ""
	_, err := svc.Create(context.Background(), params)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.Empty(t, billingClient.Calls)
}

func TestUpdate_Success(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	created, err := svc.Create(context.Background(), testParams())
	require.NoError(t, err)

	params := testParams()
	params.Name = "John Q. Doe"
	params.Address = "456 Oak Avenue"

	updated, err := svc.Update(context.Background(), created.ID, params)
	require.NoError(t, err)
	assert.Equal(t, "John Q. Doe", updated.Name)
	assert.Equal(t, "456 Oak Avenue", updated.Address)
}

func TestUpdate_OwnEmailAllowed(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	created, err := svc.Create(context.Background(), testParams())
	require.NoError(t, err)

	// Re-submitting the patient's current email is not a conflict.
	updated, err := svc.Update(context.Background(), created.ID, testParams())
	require.NoError(t, err)
	assert.Equal(t, created.Email, updated.Email)
}

func TestUpdate_EmailTakenByOther(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	_, err := svc.Create(context.Background(), testParams())
	require.NoError(t, err)

	other := testParams()
	other.Email = "jane.doe@example.com"
	second, err := svc.Create(context.Background(), other)
	require.NoError(t, err)

	steal := testParams()
	steal.Email = "john.doe@example.com"
	_, err = svc.Update(context.Background(), second.ID, steal)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUpdate_NotFound(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	_, err := svc.Update(context.Background(), uuid.New(), testParams())
	assert.ErrorIs(t, err, store.ErrPatientNotFound)
}

func TestDelete_AbsentIDIsNoOp(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	err := svc.Delete(context.Background(), uuid.New())
	assert.NoError(t, err)
}

func TestDelete_RemovesPatient(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	created, err := svc.Create(context.Background(), testParams())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = patients.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, store.ErrPatientNotFound)
}

func TestList_StoreFailure(t *testing.T) {
	t.Parallel()

	patients := mocks.NewMockPatientStore()
	patients.ListFn = func(ctx context.Context) ([]*domain.Patient, error) {
		return nil, errors.New("connection refused")
	}
	svc := service.NewPatientService(patients, &mocks.MockBillingClient{}, nil)

	_, err := svc.List(context.Background())
	require.Error(t, err)
}
