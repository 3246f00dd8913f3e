package auth

import (
	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
)

// LoginRequest carries the credential pair.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest carries self-registration input. Role is optional and
// defaults to employee.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role,omitempty"`
}

// SessionResponse is the public profile plus a freshly minted token.
type SessionResponse struct {
	ID      uuid.UUID      `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Role    enums.UserRole `json:"role"`
	StoreID *uuid.UUID     `json:"storeId,omitempty"`
	Token   string         `json:"token"`
}
