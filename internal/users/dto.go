package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
)

// UserDTO exposes the public account profile. The password hash never leaves
// the service layer.
type UserDTO struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Role             enums.UserRole `json:"role"`
	CreatedBy        *uuid.UUID     `json:"createdBy,omitempty"`
	StoreID          *uuid.UUID     `json:"storeId,omitempty"`
	CanEditInventory bool           `json:"canEditInventory"`
	CanDeleteItems   bool           `json:"canDeleteItems"`
	CanViewReports   bool           `json:"canViewReports"`
	CanManageTeam    bool           `json:"canManageTeam"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// FromModel maps the persisted user into a DTO.
func FromModel(m *models.User) *UserDTO {
	if m == nil {
		return nil
	}
	return &UserDTO{
		ID:               m.ID,
		Name:             m.Name,
		Email:            m.Email,
		Role:             m.Role,
		CreatedBy:        m.CreatedBy,
		StoreID:          m.StoreID,
		CanEditInventory: m.CanEditInventory,
		CanDeleteItems:   m.CanDeleteItems,
		CanViewReports:   m.CanViewReports,
		CanManageTeam:    m.CanManageTeam,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// FromModels maps a slice of users.
func FromModels(users []models.User) []UserDTO {
	dtos := make([]UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, *FromModel(&users[i]))
	}
	return dtos
}
