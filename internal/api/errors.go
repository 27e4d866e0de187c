package api

import (
	"errors"
	"net/http"

	"github.com/clinichub/clinic-api/internal/api/shared"
	"github.com/clinichub/clinic-api/internal/billing"
	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/service/auth"
	"github.com/clinichub/clinic-api/internal/store"
)

// MapErrorToStatusCode maps domain, store, and service errors to the
// appropriate HTTP status code.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	case store.IsNotFoundError(err):
		return http.StatusNotFound

	case store.IsDuplicateError(err):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidDate):
		return http.StatusBadRequest

	case errors.Is(err, billing.ErrUnavailable):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the given error.
// Internal details (SQL state, dial targets) never leak to the response body.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return "Invalid authentication token"
	case errors.Is(err, auth.ErrMissingToken):
		return "Authentication token is required"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, store.ErrPatientNotFound):
		return "Patient not found"
	case store.IsNotFoundError(err):
		return "Resource not found"
	case errors.Is(err, store.ErrEmailExists):
		// Naming the conflicting address is deliberate; it is the one
		// internal detail the conflict response is supposed to carry.
		var emailErr *store.EmailExistsError
		if errors.As(err, &emailErr) {
			return "A patient with this email already exists: " + emailErr.Email
		}
		return "Email address is already in use"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"
	case errors.Is(err, billing.ErrUnavailable):
		return "Billing service is unavailable"
	default:
		return "An internal error occurred"
	}
}

// HandleAPIError maps the error to a status code and safe message, logs the
// underlying error, and writes the response. defaultMessage is used when the
// error maps to a 500 and a more specific operation message is wanted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMessage != "" {
		message = defaultMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
