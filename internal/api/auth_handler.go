package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/clinichub/clinic-api/internal/api/shared"
	"github.com/clinichub/clinic-api/internal/service/auth"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	authenticator *auth.Authenticator
	validator     *validator.Validate
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given authenticator.
func NewAuthHandler(authenticator *auth.Authenticator, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthHandler{
		authenticator: authenticator,
		validator:     validator.New(),
		logger:        logger.With("component", "auth_handler"),
	}
}

// Login handles POST /login requests. It verifies the submitted
// credentials and returns a bearer token on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	token, err := h.authenticator.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// Failed logins answer an empty 401; any body would only give
			// probing clients something to diff.
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

// Validate handles GET /validate requests. It checks the bearer
// token in the Authorization header and answers 200 or 401 with no body.
// Gateways use this endpoint to gate requests before forwarding them.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if !h.authenticator.ValidateToken(r.Context(), token) {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.WriteHeader(http.StatusOK)
}
