package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/store"
)

// MockPatientStore implements store.PatientStore for testing
type MockPatientStore struct {
	// Function fields for customizable behavior
	ListFn                  func(ctx context.Context) ([]*domain.Patient, error)
	GetByIDFn               func(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	CreateFn                func(ctx context.Context, patient *domain.Patient) error
	UpdateFn                func(ctx context.Context, patient *domain.Patient) error
	DeleteFn                func(ctx context.Context, id uuid.UUID) error
	ExistsByEmailFn         func(ctx context.Context, email string) (bool, error)
	ExistsByEmailExceptIDFn func(ctx context.Context, email string, id uuid.UUID) (bool, error)

	mu       sync.Mutex
	Patients map[uuid.UUID]*domain.Patient
}

// NewMockPatientStore creates a new mock store with initialized defaults
func NewMockPatientStore() *MockPatientStore {
	return &MockPatientStore{
		Patients: make(map[uuid.UUID]*domain.Patient),
	}
}

// List implements the PatientStore interface
func (m *MockPatientStore) List(ctx context.Context) ([]*domain.Patient, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	patients := make([]*domain.Patient, 0, len(m.Patients))
	for _, p := range m.Patients {
		patients = append(patients, p)
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].CreatedAt.Before(patients[j].CreatedAt)
	})
	return patients, nil
}

// GetByID implements the PatientStore interface
func (m *MockPatientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	patient, exists := m.Patients[id]
	if !exists {
		return nil, store.ErrPatientNotFound
	}
	return patient, nil
}

// Create implements the PatientStore interface
func (m *MockPatientStore) Create(ctx context.Context, patient *domain.Patient) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, patient)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.Patients {
		if p.Email == patient.Email {
			return store.NewEmailExistsError(patient.Email)
		}
	}
	m.Patients[patient.ID] = patient
	return nil
}

// Update implements the PatientStore interface
func (m *MockPatientStore) Update(ctx context.Context, patient *domain.Patient) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, patient)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Patients[patient.ID]; !exists {
		return store.ErrPatientNotFound
	}
	m.Patients[patient.ID] = patient
	return nil
}

// Delete implements the PatientStore interface
func (m *MockPatientStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.Patients, id)
	return nil
}

// ExistsByEmail implements the PatientStore interface
func (m *MockPatientStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFn != nil {
		return m.ExistsByEmailFn(ctx, email)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.Patients {
		if p.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByEmailExceptID implements the PatientStore interface
func (m *MockPatientStore) ExistsByEmailExceptID(
	ctx context.Context,
	email string,
	id uuid.UUID,
) (bool, error) {
	if m.ExistsByEmailExceptIDFn != nil {
		return m.ExistsByEmailExceptIDFn(ctx, email, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.Patients {
		if p.Email == email && p.ID != id {
			return true, nil
		}
	}
	return false, nil
}
