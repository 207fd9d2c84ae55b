package dto

// APIResponse represents a standard success envelope for API endpoints
type APIResponse struct {
	Data interface{} `json:"data,omitempty"`
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created record
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
