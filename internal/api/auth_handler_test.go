package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinichub/clinic-api/internal/api"
	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/mocks"
	"github.com/clinichub/clinic-api/internal/service/auth"
)

const testSecret = "this-is-a-test-secret-at-least-32-chars"

func newAuthHandler(t *testing.T) (*api.AuthHandler, auth.JWTService, uuid.UUID) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := uuid.New()
	users := mocks.NewMockUserStore()
	users.Users["adminuser@test.com"] = &domain.User{
		ID:             userID,
		Email:          "adminuser@test.com",
		HashedPassword: string(hash),
	}

	jwtService := auth.NewTestJWTService(testSecret, time.Hour, time.Now)
	authenticator := auth.NewAuthenticator(users, jwtService, auth.NewBcryptVerifier(), nil)
	return api.NewAuthHandler(authenticator, nil), jwtService, userID
}

func postLogin(t *testing.T, handler *api.AuthHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Login(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	handler, jwtService, userID := newAuthHandler(t)

	w := postLogin(t, handler, api.LoginRequest{
		Email:    "adminuser@test.com",
		Password: "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.LoginResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.NotEmpty(t, resp.Token)

	claims, err := jwtService.ValidateToken(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthHandler(t)

	w := postLogin(t, handler, api.LoginRequest{
		Email:    "adminuser@test.com",
		Password: "nope",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A failed login carries no body at all.
	assert.Empty(t, w.Body.String())
}

func TestLogin_UnknownUser(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthHandler(t)

	w := postLogin(t, handler, api.LoginRequest{
		Email:    "nobody@test.com",
		Password: "password123",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestLogin_BadPayload(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthHandler(t)

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{{{"},
		{name: "missing password", body: `{"email":"adminuser@test.com"}`},
		{name: "invalid email", body: `{"email":"not-an-email","password":"password123"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tc.body))
			w := httptest.NewRecorder()
			handler.Login(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	handler, jwtService, userID := newAuthHandler(t)

	token, err := jwtService.GenerateToken(context.Background(), userID)
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "valid token", authHeader: "Bearer " + token, wantStatus: http.StatusOK},
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "no bearer prefix", authHeader: token, wantStatus: http.StatusUnauthorized},
		{name: "empty token", authHeader: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/validate", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			handler.Validate(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
