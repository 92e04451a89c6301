package dto

import (
	"time"

	"github.com/google/uuid"

	"fallapp-api/internal/domain"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	FullName string     `json:"fullName" binding:"required,min=2,max=255"`
	FallaID  *uuid.UUID `json:"fallaId,omitempty"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the authenticated user
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse represents the user response without credentials
type UserResponse struct {
	UserID     uuid.UUID  `json:"userId"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Role       string     `json:"role"`
	FallaID    *uuid.UUID `json:"fallaId,omitempty"`
	Active     bool       `json:"active"`
	LastAccess *time.Time `json:"lastAccess,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// ToUserResponse converts a user model to its response form
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       string(u.Role),
		FallaID:    u.FallaID,
		Active:     u.Active,
		LastAccess: u.LastAccess,
		CreatedAt:  u.CreatedAt,
	}
}
