package masteritems

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/repo"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
)

// Repository handles master item persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to master item operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new master item row.
func (r *Repository) Create(ctx context.Context, item *models.MasterItem) error {
	if item == nil {
		return fmt.Errorf("master item is required")
	}
	return r.DB(ctx).Create(item).Error
}

// FindByID loads a master item by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MasterItem, error) {
	var item models.MasterItem
	if err := r.DB(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns every master item, newest first. There is deliberately no
// per-owner filter.
func (r *Repository) List(ctx context.Context) ([]models.MasterItem, error) {
	var items []models.MasterItem
	if err := r.DB(ctx).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Update saves the provided master item.
func (r *Repository) Update(ctx context.Context, item *models.MasterItem) error {
	if item == nil {
		return fmt.Errorf("master item is required")
	}
	return r.DB(ctx).Save(item).Error
}

// Delete removes the master item row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.DB(ctx).Delete(&models.MasterItem{}, "id = ?", id).Error
}
