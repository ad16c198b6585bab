package dto

import (
	"time"

	"namedesk_backend/internal/models"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// UserDTO is the user as exposed over the API. The password hash never
// leaves the service layer.
type UserDTO struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Role         models.UserRole `json:"role"`
	LeaveBalance int             `json:"leave_balance"`
	CreatedAt    time.Time       `json:"created_at"`
}
