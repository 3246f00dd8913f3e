package items

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/pkg/db"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	dbtypes "github.com/rdelacruz/stocktrail-backend/pkg/db/types"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

const defaultLowStockThreshold = 5

type itemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, storeID *uuid.UUID) ([]models.Item, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes inventory operations. Every mutation consults the access
// gate after the record is loaded, so probing a missing id yields NotFound
// and probing a foreign one yields Forbidden.
type Service interface {
	List(ctx context.Context, actor access.Actor, storeFilter *uuid.UUID) ([]ItemDTO, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*ItemDTO, error)
	Create(ctx context.Context, actor access.Actor, input CreateItemInput) (*ItemDTO, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
	UpdateQuantity(ctx context.Context, actor access.Actor, id uuid.UUID, op enums.QuantityOp, amount int) (*ItemDTO, error)
}

type service struct {
	repo itemRepository
}

// ServiceParams bundles the dependencies required to build an items service.
type ServiceParams struct {
	Repo itemRepository
}

// NewService constructs an items service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("item repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// CreateItemInput captures creation-time item fields. StoreID is only honored
// for owners; for managers the gate pins the store and owner.
type CreateItemInput struct {
	Name              string
	Category          string
	Description       string
	Quantity          int
	LowStockThreshold *int
	Price             decimal.Decimal
	Supplier          string
	ExpiryDate        *time.Time
	ItemCode          string
	StoreID           uuid.UUID
	Location          types.ItemLocation
	Images            []string
	QRCode            string
	Status            enums.ItemStatus
}

// UpdateItemInput captures the mutable item fields. Nil means unchanged.
type UpdateItemInput struct {
	Name              *string
	Category          *string
	Description       *string
	Quantity          *int
	LowStockThreshold *int
	Price             *decimal.Decimal
	Supplier          *string
	ExpiryDate        *time.Time
	ClearExpiryDate   bool
	ItemCode          *string
	StoreID           *uuid.UUID
	Location          *types.ItemLocation
	Images            *[]string
	QRCode            *string
	Status            *enums.ItemStatus
}

func (s *service) List(ctx context.Context, actor access.Actor, storeFilter *uuid.UUID) ([]ItemDTO, error) {
	if err := access.CanListItems(actor); err != nil {
		return nil, err
	}

	if actor.Role == enums.UserRoleOwner {
		items, err := s.repo.ListByOwner(ctx, actor.ID, storeFilter)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
		}
		return FromModels(items), nil
	}

	// staff cannot widen their scope with a filter for another store
	if storeFilter != nil && *storeFilter != *actor.StoreID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to view this store")
	}
	items, err := s.repo.ListByStore(ctx, *actor.StoreID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	return FromModels(items), nil
}

func (s *service) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*ItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanReadItem(actor, itemRef(item)); err != nil {
		return nil, err
	}
	return FromModel(item), nil
}

func (s *service) Create(ctx context.Context, actor access.Actor, input CreateItemInput) (*ItemDTO, error) {
	attribution, err := access.ItemCreateAttribution(actor, input.StoreID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	itemCode := strings.TrimSpace(input.ItemCode)
	if itemCode == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "itemCode is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	status := input.Status
	if status == "" {
		status = enums.ItemStatusActive
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown status")
	}

	threshold := defaultLowStockThreshold
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "lowStockThreshold cannot be negative")
		}
		threshold = *input.LowStockThreshold
	}

	item := &models.Item{
		Name:              name,
		Category:          strings.TrimSpace(input.Category),
		Description:       input.Description,
		Quantity:          input.Quantity,
		LowStockThreshold: threshold,
		Price:             input.Price,
		Supplier:          strings.TrimSpace(input.Supplier),
		ExpiryDate:        input.ExpiryDate,
		ItemCode:          itemCode,
		StoreID:           attribution.StoreID,
		OwnerID:           attribution.OwnerID,
		Location:          input.Location,
		Images:            dbtypes.StringArray(input.Images),
		QRCode:            input.QRCode,
		Status:            status,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "itemCode already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create item")
	}
	return FromModel(item), nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id uuid.UUID, input UpdateItemInput) (*ItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanUpdateItem(actor, itemRef(item)); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		item.Name = name
	}
	if input.Category != nil {
		item.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
		}
		item.Quantity = *input.Quantity
	}
	if input.LowStockThreshold != nil {
		if *input.LowStockThreshold < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "lowStockThreshold cannot be negative")
		}
		item.LowStockThreshold = *input.LowStockThreshold
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.Supplier != nil {
		item.Supplier = strings.TrimSpace(*input.Supplier)
	}
	if input.ClearExpiryDate {
		item.ExpiryDate = nil
	} else if input.ExpiryDate != nil {
		item.ExpiryDate = input.ExpiryDate
	}
	if input.ItemCode != nil {
		code := strings.TrimSpace(*input.ItemCode)
		if code == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "itemCode cannot be empty")
		}
		item.ItemCode = code
	}
	if input.StoreID != nil && *input.StoreID != item.StoreID {
		if !access.CanChangeItemStore(actor) {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "storeId cannot be changed")
		}
		item.StoreID = *input.StoreID
	}
	if input.Location != nil {
		item.Location = *input.Location
	}
	if input.Images != nil {
		item.Images = dbtypes.StringArray(*input.Images)
	}
	if input.QRCode != nil {
		item.QRCode = *input.QRCode
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown status")
		}
		item.Status = *input.Status
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "itemCode already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item")
	}
	return FromModel(item), nil
}

func (s *service) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return err
	}
	if err := access.CanDeleteItem(actor, itemRef(item)); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete item")
	}
	return nil
}

// UpdateQuantity applies a stock adjustment. Subtracting below zero clamps at
// zero rather than failing.
func (s *service) UpdateQuantity(ctx context.Context, actor access.Actor, id uuid.UUID, op enums.QuantityOp, amount int) (*ItemDTO, error) {
	if !op.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown quantity op")
	}
	if amount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount cannot be negative")
	}

	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanUpdateItem(actor, itemRef(item)); err != nil {
		return nil, err
	}

	switch op {
	case enums.QuantityOpAdd:
		item.Quantity += amount
	case enums.QuantityOpSubtract:
		item.Quantity -= amount
		if item.Quantity < 0 {
			item.Quantity = 0
		}
	case enums.QuantityOpSet:
		item.Quantity = amount
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update quantity")
	}
	return FromModel(item), nil
}

func (s *service) loadItem(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	return item, nil
}

func itemRef(item *models.Item) access.ItemRef {
	return access.ItemRef{OwnerID: item.OwnerID, StoreID: item.StoreID}
}
