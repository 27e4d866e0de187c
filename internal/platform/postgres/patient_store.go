package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clinichub/clinic-api/internal/domain"
	"github.com/clinichub/clinic-api/internal/platform/logger"
	"github.com/clinichub/clinic-api/internal/store"
)

// PatientStore implements the store.PatientStore interface
// using a PostgreSQL database as the storage backend.
type PatientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPatientStore creates a new PostgreSQL implementation of the
// PatientStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller. If logger is nil,
// a default logger will be used.
func NewPatientStore(db store.DBTX, logger *slog.Logger) *PatientStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PatientStore{
		db:     db,
		logger: logger.With(slog.String("component", "patient_store")),
	}
}

// Ensure PatientStore implements store.PatientStore interface
var _ store.PatientStore = (*PatientStore)(nil)

// List implements store.PatientStore.List
// It retrieves all patients in insertion order.
func (s *PatientStore) List(ctx context.Context) ([]*domain.Patient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, address, date_of_birth, registered_date, created_at, updated_at
		FROM patients
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query patients", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var patients []*domain.Patient
	for rows.Next() {
		var patient domain.Patient
		if err := rows.Scan(
			&patient.ID,
			&patient.Name,
			&patient.Email,
			&patient.Address,
			&patient.DateOfBirth,
			&patient.RegisteredDate,
			&patient.CreatedAt,
			&patient.UpdatedAt,
		); err != nil {
			log.Error("failed to scan patient row", slog.String("error", err.Error()))
			return nil, err
		}
		patients = append(patients, &patient)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no patients found
	if patients == nil {
		patients = []*domain.Patient{}
	}

	log.Debug("listed patients", slog.Int("count", len(patients)))
	return patients, nil
}

// GetByID implements store.PatientStore.GetByID
// Returns store.ErrPatientNotFound if the patient does not exist.
func (s *PatientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, email, address, date_of_birth, registered_date, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	var patient domain.Patient
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&patient.ID,
		&patient.Name,
		&patient.Email,
		&patient.Address,
		&patient.DateOfBirth,
		&patient.RegisteredDate,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("patient not found", slog.String("patient_id", id.String()))
			return nil, store.ErrPatientNotFound
		}
		log.Error("failed to get patient by ID",
			slog.String("error", err.Error()),
			slog.String("patient_id", id.String()))
		return nil, err
	}

	return &patient, nil
}

// Create implements store.PatientStore.Create
// Returns store.ErrEmailExists if the email unique index rejects the row.
func (s *PatientStore) Create(ctx context.Context, patient *domain.Patient) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patient.Validate(); err != nil {
		log.Warn("patient validation failed during create",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return err
	}

	query := `
		INSERT INTO patients (id, name, email, address, date_of_birth, registered_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		patient.ID,
		patient.Name,
		patient.Email,
		patient.Address,
		patient.DateOfBirth,
		patient.RegisteredDate,
		patient.CreatedAt,
		patient.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			// The in-service existence check raced with a concurrent
			// create; surface the same error kind it would have produced.
			log.Debug("duplicate email during patient creation",
				slog.String("patient_id", patient.ID.String()))
			return store.NewEmailExistsError(patient.Email)
		}

		log.Error("failed to create patient",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return err
	}

	log.Info("patient created successfully",
		slog.String("patient_id", patient.ID.String()))
	return nil
}

// Update implements store.PatientStore.Update
// It persists all mutable fields (name, email, address, date of birth).
// Returns store.ErrPatientNotFound if the patient does not exist and
// store.ErrEmailExists on a unique index violation.
func (s *PatientStore) Update(ctx context.Context, patient *domain.Patient) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := patient.Validate(); err != nil {
		log.Warn("patient validation failed during update",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return err
	}

	updatedAt := time.Now().UTC()

	query := `
		UPDATE patients
		SET name = $1, email = $2, address = $3, date_of_birth = $4, updated_at = $5
		WHERE id = $6
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		patient.Name,
		patient.Email,
		patient.Address,
		patient.DateOfBirth,
		updatedAt,
		patient.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate email during patient update",
				slog.String("patient_id", patient.ID.String()))
			return store.NewEmailExistsError(patient.Email)
		}

		log.Error("failed to update patient",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("patient_id", patient.ID.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("patient not found for update",
			slog.String("patient_id", patient.ID.String()))
		return store.ErrPatientNotFound
	}

	patient.UpdatedAt = updatedAt

	log.Info("patient updated successfully",
		slog.String("patient_id", patient.ID.String()))
	return nil
}

// Delete implements store.PatientStore.Delete
// Deleting an absent ID is a no-op success.
func (s *PatientStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM patients WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete patient",
			slog.String("error", err.Error()),
			slog.String("patient_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("patient_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("patient already absent on delete",
			slog.String("patient_id", id.String()))
		return nil
	}

	log.Info("patient deleted successfully",
		slog.String("patient_id", id.String()))
	return nil
}

// ExistsByEmail implements store.PatientStore.ExistsByEmail
func (s *PatientStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		log.Error("failed to check patient email existence",
			slog.String("error", err.Error()))
		return false, err
	}

	return exists, nil
}

// ExistsByEmailExceptID implements store.PatientStore.ExistsByEmailExceptID
func (s *PatientStore) ExistsByEmailExceptID(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE email = $1 AND id <> $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, email, id).Scan(&exists); err != nil {
		log.Error("failed to check patient email existence",
			slog.String("error", err.Error()),
			slog.String("patient_id", id.String()))
		return false, err
	}

	return exists, nil
}
