package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/app/models/dto"
	"github.com/campushub/eventhub/internal/app/repositories"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
	"github.com/campushub/eventhub/internal/pkg/auth"
)

// AuthService handles signup and credential verification
type AuthService struct {
	userRepo *repositories.UserRepository
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo *repositories.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Signup validates the request and creates a new user with the password
// stored as a bcrypt hash. Email is normalized to lower case before the
// uniqueness check.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	studentID := strings.TrimSpace(req.StudentID)

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	if len(name) < 2 {
		return nil, apperrors.NewValidationError("name", "Name must be at least 2 characters")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("email", "Enter a valid email address")
	}
	if studentID == "" {
		return nil, apperrors.NewValidationError("student_id", "Student ID is required")
	}
	if len(req.Password) < 8 {
		return nil, apperrors.NewValidationError("password", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "Invalid role")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      name,
		Email:     email,
		StudentID: studentID,
		Password:  hashed,
		Role:      role,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().
		Int64("userID", id).
		Str("email", email).
		Str("role", string(role)).
		Msg("User account created")

	return user, nil
}

// Login verifies credentials and returns the matching user. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("email", "Email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// CurrentUser re-validates a session's backing user against the store
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}
