package dto

import "github.com/campushub/eventhub/internal/app/models"

// SignupRequest represents a new account request
type SignupRequest struct {
	Name      string          `json:"name" binding:"required"`
	Email     string          `json:"email" binding:"required"`
	StudentID string          `json:"student_id" binding:"required"`
	Password  string          `json:"password" binding:"required"`
	Role      models.RoleType `json:"role"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents a user without credential material
type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	StudentID string          `json:"student_id"`
	Role      models.RoleType `json:"role"`
}

// NewUserResponse builds a UserResponse from a user record
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		StudentID: user.StudentID,
		Role:      user.Role,
	}
}

// AuthResponse represents a successful signup or login
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}
