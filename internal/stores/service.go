package stores

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

type storeRepository interface {
	Create(ctx context.Context, store *models.Store) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes store operations. Mutations are owner-gated; reads are
// scoped to what the actor can see.
type Service interface {
	List(ctx context.Context, actor access.Actor) ([]StoreDTO, error)
	Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*StoreDTO, error)
	Create(ctx context.Context, actor access.Actor, input CreateStoreInput) (*StoreDTO, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, input UpdateStoreInput) (*StoreDTO, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type service struct {
	repo storeRepository
}

// ServiceParams bundles the dependencies required to build a stores service.
type ServiceParams struct {
	Repo storeRepository
}

// NewService constructs a stores service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("store repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// CreateStoreInput captures creation-time store fields.
type CreateStoreInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Layout  types.StoreLayout
}

// UpdateStoreInput captures the mutable store fields. Nil means unchanged.
type UpdateStoreInput struct {
	Name    *string
	Address *string
	Phone   *string
	Email   *string
	Layout  *types.StoreLayout
}

func (s *service) List(ctx context.Context, actor access.Actor) ([]StoreDTO, error) {
	if actor.Role.IsStaff() {
		// staff see exactly their assigned store
		if actor.StoreID == nil {
			return []StoreDTO{}, nil
		}
		store, err := s.repo.FindByID(ctx, *actor.StoreID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []StoreDTO{}, nil
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load assigned store")
		}
		return []StoreDTO{*FromModel(store)}, nil
	}

	stores, err := s.repo.FindByOwner(ctx, actor.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list stores")
	}
	return FromModels(stores), nil
}

func (s *service) Get(ctx context.Context, actor access.Actor, id uuid.UUID) (*StoreDTO, error) {
	store, err := s.loadStore(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(store), nil
}

func (s *service) Create(ctx context.Context, actor access.Actor, input CreateStoreInput) (*StoreDTO, error) {
	if err := access.RequireOwner(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	layout := input.Layout
	if layout == nil {
		layout = types.StoreLayout{}
	}
	store := &models.Store{
		Name:    name,
		Address: strings.TrimSpace(input.Address),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   strings.TrimSpace(input.Email),
		OwnerID: actor.ID,
		Layout:  layout,
	}
	if err := s.repo.Create(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create store")
	}
	return FromModel(store), nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id uuid.UUID, input UpdateStoreInput) (*StoreDTO, error) {
	store, err := s.loadStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(actor); err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name cannot be empty")
		}
		store.Name = name
	}
	if input.Address != nil {
		store.Address = strings.TrimSpace(*input.Address)
	}
	if input.Phone != nil {
		store.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		store.Email = strings.TrimSpace(*input.Email)
	}
	if input.Layout != nil {
		layout := *input.Layout
		if layout == nil {
			layout = types.StoreLayout{}
		}
		store.Layout = layout
	}

	if err := s.repo.Update(ctx, store); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update store")
	}
	return FromModel(store), nil
}

// Delete removes the store record only. Items and staff assignments pointing
// at it are not cleaned up.
func (s *service) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if _, err := s.loadStore(ctx, id); err != nil {
		return err
	}
	if err := access.RequireOwner(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete store")
	}
	return nil
}

func (s *service) loadStore(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	store, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store")
	}
	return store, nil
}
