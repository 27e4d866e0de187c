package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/mocks"
	"github.com/clinichub/clinic-api/internal/service/auth"
	"github.com/clinichub/clinic-api/internal/store"
)

func newTestAuthenticator(t *testing.T, users *mocks.MockUserStore) *auth.Authenticator {
	t.Helper()

	jwtService := auth.NewTestJWTService(testSecret, time.Hour, time.Now)
	return auth.NewAuthenticator(users, jwtService, auth.NewBcryptVerifier(), nil)
}

func seedUser(t *testing.T, users *mocks.MockUserStore, email, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		ID:             uuid.New(),
		Email:          email,
		HashedPassword: string(hash),
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}
	users.Users[email] = user
	return user
}

func TestAuthenticate_Success(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	user := seedUser(t, users, "adminuser@test.com", "password123")
	authenticator := newTestAuthenticator(t, users)

	token, err := authenticator.Authenticate(context.Background(), "adminuser@test.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The issued token must carry the user's identity.
	jwtService := auth.NewTestJWTService(testSecret, time.Hour, time.Now)
	claims, err := jwtService.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	seedUser(t, users, "adminuser@test.com", "password123")
	authenticator := newTestAuthenticator(t, users)

	_, err := authenticator.Authenticate(context.Background(), "adminuser@test.com", "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	authenticator := newTestAuthenticator(t, users)

	_, err := authenticator.Authenticate(context.Background(), "nobody@test.com", "password123")

	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	users.GetByEmailError = errors.New("connection refused")
	authenticator := newTestAuthenticator(t, users)

	_, err := authenticator.Authenticate(context.Background(), "adminuser@test.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	user := seedUser(t, users, "adminuser@test.com", "password123")
	authenticator := newTestAuthenticator(t, users)

	jwtService := auth.NewTestJWTService(testSecret, time.Hour, time.Now)
	token, err := jwtService.GenerateToken(context.Background(), user.ID)
	require.NoError(t, err)

	assert.True(t, authenticator.ValidateToken(context.Background(), token))
	assert.False(t, authenticator.ValidateToken(context.Background(), ""))
	assert.False(t, authenticator.ValidateToken(context.Background(), "not-a-token"))
}
