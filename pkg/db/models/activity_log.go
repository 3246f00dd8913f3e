package models

import (
	"time"

	"github.com/google/uuid"

	dbtypes "github.com/rdelacruz/stocktrail-backend/pkg/db/types"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
)

// ActivityLog is an append-only audit record. ItemName is a denormalized
// snapshot so entries stay readable after the item is gone. Entries are never
// updated and the application never deletes them.
type ActivityLog struct {
	ID        uuid.UUID            `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Action    enums.ActivityAction `gorm:"column:action;type:text;not null"`
	ItemID    *uuid.UUID           `gorm:"column:item_id;type:uuid"`
	ItemName  string               `gorm:"column:item_name"`
	Details   string               `gorm:"column:details"`
	UserID    uuid.UUID            `gorm:"column:user_id;type:uuid;not null"`
	OldValue  dbtypes.JSONMap      `gorm:"column:old_value;type:jsonb"`
	NewValue  dbtypes.JSONMap      `gorm:"column:new_value;type:jsonb"`
	CreatedAt time.Time            `gorm:"column:created_at;autoCreateTime"`
}
