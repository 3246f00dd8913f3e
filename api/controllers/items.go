package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rdelacruz/stocktrail-backend/api/responses"
	"github.com/rdelacruz/stocktrail-backend/api/validators"
	"github.com/rdelacruz/stocktrail-backend/internal/items"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
	"github.com/rdelacruz/stocktrail-backend/pkg/types"
)

type itemCreateRequest struct {
	Name              string             `json:"name" validate:"required"`
	Category          string             `json:"category,omitempty"`
	Description       string             `json:"description,omitempty"`
	Quantity          int                `json:"quantity,omitempty" validate:"omitempty,min=0"`
	LowStockThreshold *int               `json:"lowStockThreshold,omitempty" validate:"omitempty,min=0"`
	Price             decimal.Decimal    `json:"price,omitempty"`
	Supplier          string             `json:"supplier,omitempty"`
	ExpiryDate        *time.Time         `json:"expiryDate,omitempty"`
	ItemCode          string             `json:"itemCode" validate:"required"`
	StoreID           uuid.UUID          `json:"storeId,omitempty"`
	Location          types.ItemLocation `json:"location,omitempty"`
	Images            []string           `json:"images,omitempty"`
	QRCode            string             `json:"qrCode,omitempty"`
	Status            string             `json:"status,omitempty"`
}

func (r itemCreateRequest) toInput() items.CreateItemInput {
	return items.CreateItemInput{
		Name:              validators.SanitizeString(r.Name, maxShortText),
		Category:          validators.SanitizeString(r.Category, maxShortText),
		Description:       validators.SanitizeString(r.Description, maxLongText),
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
		Price:             r.Price,
		Supplier:          validators.SanitizeString(r.Supplier, maxShortText),
		ExpiryDate:        r.ExpiryDate,
		ItemCode:          r.ItemCode,
		StoreID:           r.StoreID,
		Location:          r.Location,
		Images:            r.Images,
		QRCode:            r.QRCode,
		Status:            enums.ItemStatus(r.Status),
	}
}

type itemUpdateRequest struct {
	Name              *string             `json:"name,omitempty" validate:"omitempty,min=1"`
	Category          *string             `json:"category,omitempty"`
	Description       *string             `json:"description,omitempty"`
	Quantity          *int                `json:"quantity,omitempty" validate:"omitempty,min=0"`
	LowStockThreshold *int                `json:"lowStockThreshold,omitempty" validate:"omitempty,min=0"`
	Price             *decimal.Decimal    `json:"price,omitempty"`
	Supplier          *string             `json:"supplier,omitempty"`
	ExpiryDate        *time.Time          `json:"expiryDate,omitempty"`
	ClearExpiryDate   bool                `json:"clearExpiryDate,omitempty"`
	ItemCode          *string             `json:"itemCode,omitempty" validate:"omitempty,min=1"`
	StoreID           *uuid.UUID          `json:"storeId,omitempty"`
	Location          *types.ItemLocation `json:"location,omitempty"`
	Images            *[]string           `json:"images,omitempty"`
	QRCode            *string             `json:"qrCode,omitempty"`
	Status            *string             `json:"status,omitempty"`
}

func (r itemUpdateRequest) toInput() items.UpdateItemInput {
	input := items.UpdateItemInput{
		Name:              sanitizePtr(r.Name, maxShortText),
		Category:          sanitizePtr(r.Category, maxShortText),
		Description:       sanitizePtr(r.Description, maxLongText),
		Quantity:          r.Quantity,
		LowStockThreshold: r.LowStockThreshold,
		Price:             r.Price,
		Supplier:          sanitizePtr(r.Supplier, maxShortText),
		ExpiryDate:        r.ExpiryDate,
		ClearExpiryDate:   r.ClearExpiryDate,
		ItemCode:          r.ItemCode,
		StoreID:           r.StoreID,
		Location:          r.Location,
		Images:            r.Images,
		QRCode:            r.QRCode,
	}
	if r.Status != nil {
		status := enums.ItemStatus(*r.Status)
		input.Status = &status
	}
	return input
}

type quantityRequest struct {
	Op     string `json:"op" validate:"required"`
	Amount int    `json:"amount" validate:"min=0"`
}

// ItemList returns the items visible to the actor, optionally filtered by the
// storeId query parameter.
func ItemList(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var storeFilter *uuid.UUID
		if raw := strings.TrimSpace(r.URL.Query().Get("storeId")); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid storeId"))
				return
			}
			storeFilter = &id
		}

		list, err := svc.List(r.Context(), actor, storeFilter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// ItemGet returns a single item by id.
func ItemGet(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), actor, id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// ItemCreate records a new inventory item.
func ItemCreate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req itemCreateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), actor, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// ItemUpdate applies a partial update to an item.
func ItemUpdate(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req itemUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Update(r.Context(), actor, id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}

// ItemDelete removes an item.
func ItemDelete(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "item deleted"})
	}
}

// ItemQuantity applies an add, subtract, or set stock adjustment.
func ItemQuantity(svc items.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req quantityRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		op, err := enums.ParseQuantityOp(req.Op)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid op"))
			return
		}

		item, err := svc.UpdateQuantity(r.Context(), actor, id, op, req.Amount)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, item)
	}
}
