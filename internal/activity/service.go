package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	dbtypes "github.com/rdelacruz/stocktrail-backend/pkg/db/types"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/pagination"
)

type activityRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.ActivityLog, error)
}

// Service exposes the append-and-read audit trail. Any authenticated user can
// append and read; the userId on appended entries is always the actor, never
// client input.
type Service interface {
	Append(ctx context.Context, actor access.Actor, input AppendInput) (*LogEntryDTO, error)
	List(ctx context.Context, actor access.Actor, params pagination.Params) (*LogPageDTO, error)
}

type service struct {
	repo activityRepository
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo activityRepository
}

// NewService constructs an activity service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("activity repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// AppendInput carries a new audit entry.
type AppendInput struct {
	Action   string
	ItemID   *uuid.UUID
	ItemName string
	Details  string
	OldValue map[string]any
	NewValue map[string]any
}

// LogEntryDTO exposes an audit record.
type LogEntryDTO struct {
	ID        uuid.UUID            `json:"id"`
	Action    enums.ActivityAction `json:"action"`
	ItemID    *uuid.UUID           `json:"itemId,omitempty"`
	ItemName  string               `json:"itemName,omitempty"`
	Details   string               `json:"details,omitempty"`
	UserID    uuid.UUID            `json:"userId"`
	OldValue  map[string]any       `json:"oldValue,omitempty"`
	NewValue  map[string]any       `json:"newValue,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

// LogPageDTO is one page of entries plus the cursor for the next one.
type LogPageDTO struct {
	Entries    []LogEntryDTO `json:"entries"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

func fromModel(m *models.ActivityLog) *LogEntryDTO {
	if m == nil {
		return nil
	}
	return &LogEntryDTO{
		ID:        m.ID,
		Action:    m.Action,
		ItemID:    m.ItemID,
		ItemName:  m.ItemName,
		Details:   m.Details,
		UserID:    m.UserID,
		OldValue:  map[string]any(m.OldValue),
		NewValue:  map[string]any(m.NewValue),
		CreatedAt: m.CreatedAt,
	}
}

func (s *service) Append(ctx context.Context, actor access.Actor, input AppendInput) (*LogEntryDTO, error) {
	action, err := enums.ParseActivityAction(input.Action)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown action")
	}

	entry := &models.ActivityLog{
		Action:   action,
		ItemID:   input.ItemID,
		ItemName: input.ItemName,
		Details:  input.Details,
		UserID:   actor.ID,
		OldValue: dbtypes.JSONMap(input.OldValue),
		NewValue: dbtypes.JSONMap(input.NewValue),
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "append activity log")
	}
	return fromModel(entry), nil
}

func (s *service) List(ctx context.Context, actor access.Actor, params pagination.Params) (*LogPageDTO, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	entries, err := s.repo.List(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list activity logs")
	}

	page := &LogPageDTO{Entries: make([]LogEntryDTO, 0, len(entries))}
	hasMore := len(entries) > limit
	if hasMore {
		entries = entries[:limit]
	}
	for i := range entries {
		page.Entries = append(page.Entries, *fromModel(&entries[i]))
	}
	if hasMore {
		last := entries[len(entries)-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}
