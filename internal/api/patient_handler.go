package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/api/shared"
	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/service"
)

// PatientHandler handles patient CRUD requests.
type PatientHandler struct {
	patientService service.PatientService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(patientService service.PatientService, logger *slog.Logger) *PatientHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PatientHandler{
		patientService: patientService,
		validator:      validator.New(),
		logger:         logger.With("component", "patient_handler"),
	}
}

// List handles GET /patients requests.
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list patients")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPatientListResponse(patients))
}

// Create handles POST /patients requests.
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePatientRequest(w, r)
	if !ok {
		return
	}

	params, err := req.ToParams(true)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	patient, err := h.patientService.Create(r.Context(), params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create patient")
		return
	}

	// The original surface answers a plain 200 on create, not 201.
	shared.RespondWithJSON(w, r, http.StatusOK, NewPatientResponse(patient))
}

// Update handles PUT /patients/{id} requests.
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := h.patientID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, ok := h.decodePatientRequest(w, r)
	if !ok {
		return
	}

	params, err := req.ToParams(false)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	patient, err := h.patientService.Update(r.Context(), id, params)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update patient")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPatientResponse(patient))
}

// Delete handles DELETE /patients/{id} requests. Deleting an unknown
// ID still answers 204.
func (h *PatientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := h.patientID(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.patientService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete patient")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PatientHandler) decodePatientRequest(w http.ResponseWriter, r *http.Request) (PatientRequest, bool) {
	var req PatientRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: "+err.Error())
		return req, false
	}

	return req, true
}

func (h *PatientHandler) patientID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: patient id must be a UUID", domain.ErrInvalidID)
	}
	return id, nil
}
