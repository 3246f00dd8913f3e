package items

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/pkg/db"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

func setupItemsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS items (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT,
  description TEXT,
  quantity INTEGER NOT NULL DEFAULT 0,
  low_stock_threshold INTEGER NOT NULL DEFAULT 5,
  price NUMERIC NOT NULL DEFAULT 0,
  supplier TEXT,
  expiry_date DATETIME,
  item_code TEXT NOT NULL UNIQUE,
  store_id TEXT NOT NULL,
  owner_id TEXT NOT NULL,
  location TEXT NOT NULL DEFAULT '{}',
  images TEXT NOT NULL DEFAULT '{}',
  qr_code TEXT,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, gdb.Exec(ddl).Error)
	return gdb
}

func newTestItem(ownerID, storeID uuid.UUID, code string) *models.Item {
	return &models.Item{
		ID:       uuid.New(),
		Name:     "Test Item " + code,
		Quantity: 10,
		Price:    decimal.NewFromInt(5),
		ItemCode: code,
		StoreID:  storeID,
		OwnerID:  ownerID,
		Location: types.ItemLocation{Section: "A"},
		Status:   enums.ItemStatusActive,
	}
}

func TestItemRepositoryRoundTrip(t *testing.T) {
	gdb := setupItemsTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	ownerID := uuid.New()
	storeID := uuid.New()
	item := newTestItem(ownerID, storeID, "RT-1")
	item.Images = []string{"a.png", "b.png"}

	require.NoError(t, repo.Create(ctx, item))

	loaded, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ItemCode, loaded.ItemCode)
	assert.Equal(t, ownerID, loaded.OwnerID)
	assert.Equal(t, "A", loaded.Location.Section)
	assert.Equal(t, []string{"a.png", "b.png"}, []string(loaded.Images))
}

func TestItemRepositoryDuplicateItemCode(t *testing.T) {
	gdb := setupItemsTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	ownerID := uuid.New()
	storeID := uuid.New()
	require.NoError(t, repo.Create(ctx, newTestItem(ownerID, storeID, "DUP-1")))

	err := repo.Create(ctx, newTestItem(ownerID, storeID, "DUP-1"))
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err, ""))
}

func TestItemRepositoryListScoping(t *testing.T) {
	gdb := setupItemsTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	ownerA := uuid.New()
	ownerB := uuid.New()
	store1 := uuid.New()
	store2 := uuid.New()

	a1 := newTestItem(ownerA, store1, "A-1")
	a1.CreatedAt = time.Now().Add(-2 * time.Hour)
	a2 := newTestItem(ownerA, store2, "A-2")
	a2.CreatedAt = time.Now().Add(-1 * time.Hour)
	b1 := newTestItem(ownerB, store1, "B-1")

	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))
	require.NoError(t, repo.Create(ctx, b1))

	all, err := repo.ListByOwner(ctx, ownerA, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// newest first
	assert.Equal(t, "A-2", all[0].ItemCode)

	filtered, err := repo.ListByOwner(ctx, ownerA, &store1)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "A-1", filtered[0].ItemCode)

	inStore, err := repo.ListByStore(ctx, store1)
	require.NoError(t, err)
	// store listing crosses owners
	assert.Len(t, inStore, 2)
}

func TestItemRepositoryUpdateAndDelete(t *testing.T) {
	gdb := setupItemsTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	item := newTestItem(uuid.New(), uuid.New(), "UD-1")
	require.NoError(t, repo.Create(ctx, item))

	item.Quantity = 42
	require.NoError(t, repo.Update(ctx, item))

	loaded, err := repo.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Quantity)

	require.NoError(t, repo.Delete(ctx, item.ID))
	_, err = repo.FindByID(ctx, item.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
