package items

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/repo"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
)

// Repository handles item persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to item operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new item row.
func (r *Repository) Create(ctx context.Context, item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return r.DB(ctx).Create(item).Error
}

// FindByID loads an item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := r.DB(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByOwner returns the items attributed to the owner, optionally narrowed
// to a single store.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, storeID *uuid.UUID) ([]models.Item, error) {
	q := r.DB(ctx).Where("owner_id = ?", ownerID)
	if storeID != nil {
		q = q.Where("store_id = ?", *storeID)
	}
	var items []models.Item
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByStore returns every item placed in the store.
func (r *Repository) ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	if err := r.DB(ctx).Where("store_id = ?", storeID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves the provided item.
func (r *Repository) Update(ctx context.Context, item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item is required")
	}
	return r.DB(ctx).Save(item).Error
}

// Delete removes the item row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.Item{}, "id = ?", id).Error
}
