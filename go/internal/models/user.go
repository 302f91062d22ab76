package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can create and join leagues. Credential handling
// lives outside this service; only identity and display data are stored here.
type User struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
