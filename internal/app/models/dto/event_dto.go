package dto

// CreateEventRequest represents a new catalog entry. Binding failures on
// this request map to 400, not 422.
type CreateEventRequest struct {
	Name   string `json:"name" binding:"required"`
	Poster string `json:"poster" binding:"required"`
}
