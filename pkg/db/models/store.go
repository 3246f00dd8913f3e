package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

// Store represents the canonical tenant model. The layout column holds the
// ordered section/rack/shelf/bin hierarchy as JSONB.
type Store struct {
	ID        uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string            `gorm:"column:name;not null"`
	Address   string            `gorm:"column:address"`
	Phone     string            `gorm:"column:phone"`
	Email     string            `gorm:"column:email"`
	OwnerID   uuid.UUID         `gorm:"column:owner_id;type:uuid;not null"`
	Layout    types.StoreLayout `gorm:"column:layout;type:jsonb;not null;default:'[]'"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
