package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
)

// User represents the canonical identity entity. CreatedBy tracks the
// owner/manager that issued the account; StoreID is the staff assignment and
// stays nil for owner accounts.
type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string         `gorm:"column:name;not null"`
	Email        string         `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	Role         enums.UserRole `gorm:"column:role;type:text;not null;default:'employee'"`
	CreatedBy    *uuid.UUID     `gorm:"column:created_by;type:uuid"`
	StoreID      *uuid.UUID     `gorm:"column:store_id;type:uuid"`

	// Fine-grained overrides for non-owner accounts. Stored and returned to
	// clients; the server does not enforce them on item mutations.
	CanEditInventory bool `gorm:"column:can_edit_inventory;not null;default:false"`
	CanDeleteItems   bool `gorm:"column:can_delete_items;not null;default:false"`
	CanViewReports   bool `gorm:"column:can_view_reports;not null;default:false"`
	CanManageTeam    bool `gorm:"column:can_manage_team;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
