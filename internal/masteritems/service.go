package masteritems

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
)

type masterItemRepository interface {
	Create(ctx context.Context, item *models.MasterItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.MasterItem, error)
	List(ctx context.Context) ([]models.MasterItem, error)
	Update(ctx context.Context, item *models.MasterItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service exposes the owner-only master item vault. Every owner account sees
// and mutates every record; CreatedBy is recorded for display only.
type Service interface {
	List(ctx context.Context, actor access.Actor) ([]MasterItemDTO, error)
	Create(ctx context.Context, actor access.Actor, input MasterItemInput) (*MasterItemDTO, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, input MasterItemInput) (*MasterItemDTO, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}

type service struct {
	repo masterItemRepository
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo masterItemRepository
}

// NewService constructs a master items service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("master item repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// MasterItemInput carries the writable fields.
type MasterItemInput struct {
	Name     string
	Location string
	Quantity int
	Details  string
}

// MasterItemDTO exposes a vault record.
type MasterItemDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Quantity  int       `json:"quantity"`
	Details   string    `json:"details,omitempty"`
	CreatedBy uuid.UUID `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromModel(m *models.MasterItem) *MasterItemDTO {
	if m == nil {
		return nil
	}
	return &MasterItemDTO{
		ID:        m.ID,
		Name:      m.Name,
		Location:  m.Location,
		Quantity:  m.Quantity,
		Details:   m.Details,
		CreatedBy: m.CreatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (s *service) List(ctx context.Context, actor access.Actor) ([]MasterItemDTO, error) {
	if err := access.RequireOwner(actor); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list master items")
	}
	dtos := make([]MasterItemDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, *fromModel(&items[i]))
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, actor access.Actor, input MasterItemInput) (*MasterItemDTO, error) {
	if err := access.RequireOwner(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	item := &models.MasterItem{
		Name:      name,
		Location:  strings.TrimSpace(input.Location),
		Quantity:  input.Quantity,
		Details:   input.Details,
		CreatedBy: actor.ID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create master item")
	}
	return fromModel(item), nil
}

func (s *service) Update(ctx context.Context, actor access.Actor, id uuid.UUID, input MasterItemInput) (*MasterItemDTO, error) {
	item, err := s.loadItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(actor); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.Quantity < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	item.Name = name
	item.Location = strings.TrimSpace(input.Location)
	item.Quantity = input.Quantity
	item.Details = input.Details

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update master item")
	}
	return fromModel(item), nil
}

func (s *service) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if _, err := s.loadItem(ctx, id); err != nil {
		return err
	}
	if err := access.RequireOwner(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete master item")
	}
	return nil
}

func (s *service) loadItem(ctx context.Context, id uuid.UUID) (*models.MasterItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "master item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load master item")
	}
	return item, nil
}
