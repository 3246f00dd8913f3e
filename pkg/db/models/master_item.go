package models

import (
	"time"

	"github.com/google/uuid"
)

// MasterItem is the owner-exclusive private ledger entry. It is isolated from
// the store/item model; CreatedBy is recorded for display only and every
// owner account can read and write every record.
type MasterItem struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	Location  string    `gorm:"column:location"`
	Quantity  int       `gorm:"column:quantity;not null;default:0"`
	Details   string    `gorm:"column:details"`
	CreatedBy uuid.UUID `gorm:"column:created_by;type:uuid;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
