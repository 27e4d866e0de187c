package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinichub/clinic-api/internal/config"
	"github.com/clinichub/clinic-api/internal/service/auth"
)

const testSecret = "this-is-a-test-secret-at-least-32-chars"

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	t.Run("rejects short secret", func(t *testing.T) {
		t.Parallel()

		_, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            "too-short",
			TokenLifetimeMinutes: 60,
		})
		require.Error(t, err)
	})

	t.Run("accepts valid config", func(t *testing.T) {
		t.Parallel()

		svc, err := auth.NewJWTService(config.AuthConfig{
			JWTSecret:            testSecret,
			TokenLifetimeMinutes: 60,
		})
		require.NoError(t, err)
		require.NotNil(t, svc)
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	svc := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })

	token, err := svc.GenerateToken(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt, time.Second)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	issuedAt := time.Now()

	issuer := auth.NewTestJWTService(testSecret, time.Minute, func() time.Time { return issuedAt })
	token, err := issuer.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	// Validate two minutes later, past the one-minute lifetime.
	verifier := auth.NewTestJWTService(testSecret, time.Minute, func() time.Time {
		return issuedAt.Add(2 * time.Minute)
	})

	_, err = verifier.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateToken_WrongKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Now()

	issuer := auth.NewTestJWTService(testSecret, time.Hour, func() time.Time { return now })
	token, err := issuer.GenerateToken(ctx, uuid.New())
	require.NoError(t, err)

	verifier := auth.NewTestJWTService(
		"a-different-secret-also-32-characters!!",
		time.Hour,
		func() time.Time { return now },
	)

	_, err = verifier.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateToken_MalformedInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := auth.NewTestJWTService(testSecret, time.Hour, time.Now)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a jwt", token: "garbage"},
		{name: "wrong segment count", token: "a.b"},
		{name: "binary noise", token: "\x00\x01\x02"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.ValidateToken(ctx, tc.token)
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}
