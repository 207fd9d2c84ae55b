package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
	"github.com/campushub/eventhub/internal/pkg/dberrors"
)

// RegistrationRepository handles registration ledger database operations
type RegistrationRepository struct {
	db *sql.DB
}

// NewRegistrationRepository creates a new RegistrationRepository
func NewRegistrationRepository(db *sql.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
	}
}

// CreateRegistration stores a new registration and returns its identifier.
// The (student_id, event_name) pair is unique; a concurrent duplicate is
// caught by the constraint and reported the same way as the fast-path check.
func (r *RegistrationRepository) CreateRegistration(ctx context.Context, reg *models.Registration) (int64, error) {
	exists, err := r.RegistrationExists(ctx, reg.StudentID, reg.EventName)
	if err != nil {
		return 0, fmt.Errorf("error checking registration: %w", err)
	}
	if exists {
		return 0, apperrors.ErrAlreadyRegistered
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO registrations (student_name, student_id, event_name, role)
		VALUES (?, ?, ?, ?)`,
		reg.StudentName, reg.StudentID, reg.EventName, reg.Role)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("error creating registration: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new registration id: %w", err)
	}

	return id, nil
}

// GetAllRegistrations returns all registrations in insertion order
func (r *RegistrationRepository) GetAllRegistrations(ctx context.Context) ([]models.Registration, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, student_name, student_id, event_name, role
		FROM registrations
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	defer rows.Close()

	regs := make([]models.Registration, 0)
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.ID, &reg.StudentName, &reg.StudentID, &reg.EventName, &reg.Role); err != nil {
			return nil, fmt.Errorf("error scanning registration: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return regs, nil
}

// RegistrationExists checks if a student already registered for an event name
func (r *RegistrationRepository) RegistrationExists(ctx context.Context, studentID, eventName string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM registrations WHERE student_id = ? AND event_name = ?)`,
		studentID, eventName).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking registration: %w", err)
	}

	return exists, nil
}

// DeleteRegistration removes a registration permanently
func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("error deleting registration: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrRegistrationNotFound
	}

	return nil
}
