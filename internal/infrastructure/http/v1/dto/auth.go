package dto

import (
	"storeops/internal/domain/auth"
)

// RegisterRequest is the request body for user registration.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"omitempty,email"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

// LoginRequest is the request body for login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserPayload is the public view of a user.
type UserPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthResponse is the top-level envelope returned by register and login.
// Token and user sit beside success, not under data.
type AuthResponse struct {
	Success bool        `json:"success"`
	Token   string      `json:"token"`
	User    UserPayload `json:"user"`
}

// NewAuthResponse builds the auth envelope from a user and signed token.
func NewAuthResponse(u *auth.User, token string) AuthResponse {
	return AuthResponse{
		Success: true,
		Token:   token,
		User: UserPayload{
			ID:       u.ID.String(),
			Username: u.Username,
			Role:     string(u.Role),
		},
	}
}
