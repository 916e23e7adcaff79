package dto

import (
	"time"

	"gameadvisor/internal/http-api/models"
)

// UserResponse: public view of a user.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Language  string    `json:"language,omitempty"`
	Age       int       `json:"age,omitempty"`
	Platform  string    `json:"platform,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateUserRequest: partial profile update; omitted fields stay unchanged.
type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Language *string `json:"language,omitempty"`
	Age      *int    `json:"age,omitempty" binding:"omitempty,gte=0"`
	Platform *string `json:"platform,omitempty"`
}

// FromUserModel maps a user model to its response DTO.
func FromUserModel(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Language:  user.Language,
		Age:       user.Age,
		Platform:  user.Platform,
		CreatedAt: user.CreatedAt,
	}
}
