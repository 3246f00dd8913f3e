package activity

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/repo"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/pagination"
)

// Repository handles activity log persistence. Rows are append-only: there is
// no update or delete path.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to activity log operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create appends a new log entry.
func (r *Repository) Create(ctx context.Context, entry *models.ActivityLog) error {
	if entry == nil {
		return fmt.Errorf("activity log entry is required")
	}
	return r.DB(ctx).Create(entry).Error
}

// List returns entries newest first, keyset-paginated on (created_at, id).
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.ActivityLog, error) {
	q := r.DB(ctx).Order("created_at DESC, id DESC").Limit(limit)
	if cursor != nil {
		q = q.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}
	var entries []models.ActivityLog
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
