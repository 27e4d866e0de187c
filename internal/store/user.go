package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/domain"
)

// UserStore defines the interface for credential persistence.
// Credentials are provisioned out of band; at runtime the auth service
// only ever reads them, but Create is part of the contract so seeding
// and tests go through the same path.
type UserStore interface {
	// Create saves a new user to the store.
	// It hashes the plaintext password before persisting.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
