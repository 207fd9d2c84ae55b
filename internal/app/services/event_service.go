package services

import (
	"context"
	"strings"

	"github.com/campushub/eventhub/internal/app/models"
	"github.com/campushub/eventhub/internal/app/repositories"
	"github.com/campushub/eventhub/internal/pkg/apperrors"
)

// EventService handles event catalog operations
type EventService struct {
	eventRepo *repositories.EventRepository
}

// NewEventService creates a new EventService
func NewEventService(eventRepo *repositories.EventRepository) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

// ListEvents returns all events
func (s *EventService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.GetAllEvents(ctx)
}

// CreateEvent stores a new catalog entry. Missing fields are a bad request,
// not a validation failure; the wire contract predates the 422 mapping.
func (s *EventService) CreateEvent(ctx context.Context, name, poster string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" || poster == "" {
		return 0, apperrors.NewBadRequestError("name and poster are required")
	}

	event := &models.Event{
		Name:   name,
		Poster: poster,
	}

	return s.eventRepo.CreateEvent(ctx, event)
}

// DeleteEvent removes an event. Registrations are decoupled copies and are
// not cascaded.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.DeleteEvent(ctx, id)
}
