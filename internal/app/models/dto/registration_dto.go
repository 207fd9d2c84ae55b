package dto

import "github.com/campushub/eventhub/internal/app/models"

// CreateRegistrationRequest represents an enrollment request. Field names
// mirror the wire contract: "id" is the student ID and "event" the event
// name, stored verbatim.
type CreateRegistrationRequest struct {
	Name      string                  `json:"name" binding:"required"`
	StudentID string                  `json:"id" binding:"required"`
	EventName string                  `json:"event" binding:"required"`
	Role      models.RegistrationRole `json:"role"`
}
