package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/app/repositories"
	"github.com/campushub/eventhub/internal/config"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
	"github.com/campushub/eventhub/internal/pkg/auth"
)

// CreateDefaultAdmin creates the bootstrap admin account from config if one
// is configured and does not exist yet. A deployment that manages admins
// through signup can leave the admin section empty.
func CreateDefaultAdmin(ctx context.Context, users *repositories.UserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Debug().Msg("No bootstrap admin configured, skipping seed")
		return nil
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}
	studentID := cfg.Admin.StudentID
	if studentID == "" {
		studentID = "ADMIN"
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:      name,
		Email:     cfg.Admin.Email,
		StudentID: studentID,
		Password:  hashed,
		Role:      models.RoleAdmin,
	}

	id, err := users.CreateUser(ctx, admin)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrStudentIDAlreadyExists) {
			lgr.Debug().Str("email", cfg.Admin.Email).Msg("Bootstrap admin already exists")
			return nil
		}
		return err
	}

	lgr.Info().Int64("userID", id).Str("email", cfg.Admin.Email).Msg("Bootstrap admin account created")
	return nil
}
