package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/clinic-api/internal/domain"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("adminuser@test.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "adminuser@test.com", user.Email)
	assert.Equal(t, "password123", user.Password)
	assert.Empty(t, user.HashedPassword)
}

func TestNewUser_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "empty email", email: "", password: "password123", wantErr: domain.ErrEmptyEmail},
		{name: "malformed email", email: "nope", password: "password123", wantErr: domain.ErrInvalidEmail},
		{name: "empty password", email: "adminuser@test.com", password: "", wantErr: domain.ErrEmptyPassword},
		{
			name:     "password over bcrypt limit",
			email:    "adminuser@test.com",
			password: strings.Repeat("x", 73),
			wantErr:  domain.ErrPasswordTooLong,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewUser(tc.email, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only a hash.
	user, err := domain.NewUser("adminuser@test.com", "password123")
	require.NoError(t, err)

	user.Password = ""
	assert.ErrorIs(t, user.Validate(), domain.ErrEmptyPassword)

	user.HashedPassword = "$2a$10$fakefakefakefakefakefake"
	assert.NoError(t, user.Validate())
}
