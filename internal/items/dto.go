package items

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

// ItemDTO exposes an inventory record in API responses.
type ItemDTO struct {
	ID                uuid.UUID          `json:"id"`
	Name              string             `json:"name"`
	Category          string             `json:"category,omitempty"`
	Description       string             `json:"description,omitempty"`
	Quantity          int                `json:"quantity"`
	LowStockThreshold int                `json:"lowStockThreshold"`
	Price             decimal.Decimal    `json:"price"`
	Supplier          string             `json:"supplier,omitempty"`
	ExpiryDate        *time.Time         `json:"expiryDate,omitempty"`
	ItemCode          string             `json:"itemCode"`
	StoreID           uuid.UUID          `json:"storeId"`
	OwnerID           uuid.UUID          `json:"owner"`
	Location          types.ItemLocation `json:"location"`
	Images            []string           `json:"images"`
	QRCode            string             `json:"qrCode,omitempty"`
	Status            enums.ItemStatus   `json:"status"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// FromModel maps the persisted item into a DTO.
func FromModel(m *models.Item) *ItemDTO {
	if m == nil {
		return nil
	}
	images := []string(m.Images)
	if images == nil {
		images = []string{}
	}
	return &ItemDTO{
		ID:                m.ID,
		Name:              m.Name,
		Category:          m.Category,
		Description:       m.Description,
		Quantity:          m.Quantity,
		LowStockThreshold: m.LowStockThreshold,
		Price:             m.Price,
		Supplier:          m.Supplier,
		ExpiryDate:        m.ExpiryDate,
		ItemCode:          m.ItemCode,
		StoreID:           m.StoreID,
		OwnerID:           m.OwnerID,
		Location:          m.Location,
		Images:            images,
		QRCode:            m.QRCode,
		Status:            m.Status,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// FromModels maps a slice of items.
func FromModels(items []models.Item) []ItemDTO {
	dtos := make([]ItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *FromModel(&items[i]))
	}
	return dtos
}
