package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
	"github.com/campushub/eventhub/internal/pkg/dberrors"
)

// UserRepository handles user database operations
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Timestamps are stored as unix milliseconds so scans never depend on
// driver-side time parsing.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// CreateUser creates a new user and returns its identifier. The email and
// student ID uniqueness checks run first so the common case gets a precise
// error; the UNIQUE constraints remain the backstop for concurrent signups.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	exists, err := r.EmailExists(ctx, user.Email)
	if err != nil {
		return 0, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	exists, err = r.StudentIDExists(ctx, user.StudentID)
	if err != nil {
		return 0, fmt.Errorf("error checking student ID: %w", err)
	}
	if exists {
		return 0, apperrors.ErrStudentIDAlreadyExists
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO users (name, email, student_id, password, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		user.Name, user.Email, user.StudentID, user.Password, user.Role, toMillis(user.CreatedAt))
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			// Lost a race; figure out which key collided
			if taken, checkErr := r.EmailExists(ctx, user.Email); checkErr == nil && taken {
				return 0, apperrors.ErrEmailAlreadyExists
			}
			return 0, apperrors.ErrStudentIDAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("error reading new user id: %w", err)
	}

	return id, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, student_id, password, role, created_at
		FROM users
		WHERE email = ?`,
		email).Scan(
		&user.ID, &user.Name, &user.Email, &user.StudentID,
		&user.Password, &user.Role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user by email: %w", err)
	}
	user.CreatedAt = fromMillis(createdAt)

	return user, nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	var createdAt int64
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, student_id, password, role, created_at
		FROM users
		WHERE id = ?`,
		id).Scan(
		&user.ID, &user.Name, &user.Email, &user.StudentID,
		&user.Password, &user.Role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user by id: %w", err)
	}
	user.CreatedAt = fromMillis(createdAt)

	return user, nil
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`,
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// StudentIDExists checks if a student ID is already registered
func (r *UserRepository) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE student_id = ?)`,
		studentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student ID: %w", err)
	}

	return exists, nil
}
