package users

import "github.com/mcdev12/pick6/go/internal/models"

// LoginRequest identifies or creates an account by email.
type LoginRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// LoginResponse carries the session token and the resolved user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UpdateUserRequest changes profile data.
type UpdateUserRequest struct {
	DisplayName string `json:"display_name"`
}
