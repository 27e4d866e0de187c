package billing

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Provisioner creates billing accounts on the billing side.
type Provisioner interface {
	Provision(ctx context.Context, patientID, name, email string) (*Account, error)
}

// MemoryProvisioner is an in-process Provisioner keeping accounts in a map.
// Provisioning the same patient twice returns the existing account, which
// gives the unprotected RPC endpoint a measure of idempotency.
type MemoryProvisioner struct {
	mu       sync.Mutex
	accounts map[string]*Account
}

// NewMemoryProvisioner creates an empty MemoryProvisioner.
func NewMemoryProvisioner() *MemoryProvisioner {
	return &MemoryProvisioner{
		accounts: make(map[string]*Account),
	}
}

// Ensure MemoryProvisioner implements Provisioner
var _ Provisioner = (*MemoryProvisioner)(nil)

// Provision implements Provisioner.Provision.
func (p *MemoryProvisioner) Provision(ctx context.Context, patientID, name, email string) (*Account, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if account, ok := p.accounts[patientID]; ok {
		return account, nil
	}

	account := &Account{
		AccountID: uuid.New().String(),
		Status:    "ACTIVE",
	}
	p.accounts[patientID] = account
	return account, nil
}

// Count returns the number of provisioned accounts.
func (p *MemoryProvisioner) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.accounts)
}
