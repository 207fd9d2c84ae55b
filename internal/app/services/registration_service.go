package services

import (
	"context"
	"strings"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/app/models/dto"
	"github.com/campushub/eventhub/internal/app/repositories"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

// RegistrationService handles the registration ledger
type RegistrationService struct {
	registrationRepo *repositories.RegistrationRepository
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(registrationRepo *repositories.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
	}
}

// ListRegistrations returns all registrations
func (s *RegistrationService) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	return s.registrationRepo.GetAllRegistrations(ctx)
}

// CreateRegistration validates and stores an enrollment. The event name is
// recorded verbatim; there is no lookup against the event catalog.
func (s *RegistrationService) CreateRegistration(ctx context.Context, req *dto.CreateRegistrationRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	studentID := strings.TrimSpace(req.StudentID)
	eventName := strings.TrimSpace(req.EventName)

	role := req.Role
	if role == "" {
		role = models.RegistrationParticipant
	}

	if name == "" || studentID == "" || eventName == "" {
		return 0, apperrors.NewValidationError("", "name, id, and event are required")
	}
	if !role.IsValid() {
		return 0, apperrors.NewValidationError("role", "Invalid role")
	}

	reg := &models.Registration{
		StudentName: name,
		StudentID:   studentID,
		EventName:   eventName,
		Role:        role,
	}

	return s.registrationRepo.CreateRegistration(ctx, reg)
}

// DeleteRegistration removes a registration
func (s *RegistrationService) DeleteRegistration(ctx context.Context, id int64) error {
	return s.registrationRepo.DeleteRegistration(ctx, id)
}
