package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clinichub/clinic-api/internal/store"
)

// Authenticator authenticates login requests against the credential store
// and issues tokens on success. Its only side effect is the store read.
type Authenticator struct {
	userStore        store.UserStore
	jwtService       JWTService
	passwordVerifier PasswordVerifier
	logger           *slog.Logger
}

// NewAuthenticator creates a new Authenticator with the given dependencies.
func NewAuthenticator(
	userStore store.UserStore,
	jwtService JWTService,
	passwordVerifier PasswordVerifier,
	logger *slog.Logger,
) *Authenticator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Authenticator{
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		logger:           logger.With("component", "authenticator"),
	}
}

// Authenticate looks up the credential by email and verifies the password.
// On match it returns a freshly issued token. An absent user and a wrong
// password both return ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		a.logger.Error("failed to look up user by email", "error", err)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := a.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		a.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}

// ValidateToken reports whether the given token string verifies.
// It delegates to the JWT service; any validation failure yields false.
func (a *Authenticator) ValidateToken(ctx context.Context, tokenString string) bool {
	_, err := a.jwtService.ValidateToken(ctx, tokenString)
	return err == nil
}
