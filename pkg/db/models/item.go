package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	dbtypes "github.com/rdelacruz/stocktrail-backend/pkg/db/types"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

// Item represents a tracked inventory record. OwnerID always points at an
// owner-role user; for manager-created items it is the manager's creating
// owner, never the manager. StoreID is a plain reference, not an owning
// pointer: deleting a store leaves its items in place.
type Item struct {
	ID                uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name              string              `gorm:"column:name;not null"`
	Category          string              `gorm:"column:category"`
	Description       string              `gorm:"column:description"`
	Quantity          int                 `gorm:"column:quantity;not null;default:0"`
	LowStockThreshold int                 `gorm:"column:low_stock_threshold;not null;default:5"`
	Price             decimal.Decimal     `gorm:"column:price;type:numeric(12,2);not null;default:0"`
	Supplier          string              `gorm:"column:supplier"`
	ExpiryDate        *time.Time          `gorm:"column:expiry_date"`
	ItemCode          string              `gorm:"column:item_code;not null;uniqueIndex"`
	StoreID           uuid.UUID           `gorm:"column:store_id;type:uuid;not null"`
	OwnerID           uuid.UUID           `gorm:"column:owner_id;type:uuid;not null"`
	Location          types.ItemLocation  `gorm:"column:location;type:jsonb;not null;default:'{}'"`
	Images            dbtypes.StringArray `gorm:"column:images;type:text[];not null;default:'{}'"`
	QRCode            string              `gorm:"column:qr_code"`
	Status            enums.ItemStatus    `gorm:"column:status;type:text;not null;default:'active'"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
