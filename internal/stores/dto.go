package stores

import (
	"time"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

// StoreDTO exposes tenant data in API responses.
type StoreDTO struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	Address   string            `json:"address,omitempty"`
	Phone     string            `json:"phone,omitempty"`
	Email     string            `json:"email,omitempty"`
	OwnerID   uuid.UUID         `json:"ownerId"`
	Layout    types.StoreLayout `json:"layout"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// FromModel maps the persisted store into a DTO.
func FromModel(m *models.Store) *StoreDTO {
	if m == nil {
		return nil
	}
	layout := m.Layout
	if layout == nil {
		layout = types.StoreLayout{}
	}
	return &StoreDTO{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Phone:     m.Phone,
		Email:     m.Email,
		OwnerID:   m.OwnerID,
		Layout:    layout,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromModels maps a slice of stores.
func FromModels(stores []models.Store) []StoreDTO {
	dtos := make([]StoreDTO, 0, len(stores))
	for i := range stores {
		dtos = append(dtos, *FromModel(&stores[i]))
	}
	return dtos
}
