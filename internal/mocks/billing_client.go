package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/billing"
)

// MockBillingClient implements billing.Client for testing
type MockBillingClient struct {
	// CreateBillingAccountFn allows test cases to mock the RPC behavior
	CreateBillingAccountFn func(ctx context.Context, patientID, name, email string) (*billing.Account, error)

	// Calls records the patient IDs provisioning was requested for
	Calls []string

	// Err is returned when CreateBillingAccountFn is not set
	Err error
}

// CreateBillingAccount implements the billing.Client interface
func (m *MockBillingClient) CreateBillingAccount(
	ctx context.Context,
	patientID, name, email string,
) (*billing.Account, error) {
	m.Calls = append(m.Calls, patientID)

	if m.CreateBillingAccountFn != nil {
		return m.CreateBillingAccountFn(ctx, patientID, name, email)
	}

	if m.Err != nil {
		return nil, m.Err
	}

	return &billing.Account{
		AccountID: uuid.NewString(),
		Status:    "ACTIVE",
	}, nil
}
