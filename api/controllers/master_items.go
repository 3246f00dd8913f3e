package controllers

import (
	"net/http"

	"github.com/rdelacruz/stocktrail-backend/api/responses"
	"github.com/rdelacruz/stocktrail-backend/api/validators"
	"github.com/rdelacruz/stocktrail-backend/internal/masteritems"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
)

type masterItemRequest struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location,omitempty"`
	Quantity int    `json:"quantity,omitempty" validate:"omitempty,min=0"`
	Details  string `json:"details,omitempty"`
}

func (r masterItemRequest) toInput() masteritems.MasterItemInput {
	return masteritems.MasterItemInput{
		Name:     validators.SanitizeString(r.Name, maxShortText),
		Location: validators.SanitizeString(r.Location, maxShortText),
		Quantity: r.Quantity,
		Details:  validators.SanitizeString(r.Details, maxLongText),
	}
}

// MasterItemList returns the shared vault. Owner only.
func MasterItemList(svc masteritems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "master item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.List(r.Context(), actor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// MasterItemCreate adds a vault record.
func MasterItemCreate(svc masteritems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "master item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req masterItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Create(r.Context(), actor, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// MasterItemUpdate replaces a vault record's writable fields.
func MasterItemUpdate(svc masteritems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "master item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "masterItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req masterItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Update(r.Context(), actor, id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, record)
	}
}

// MasterItemDelete removes a vault record.
func MasterItemDelete(svc masteritems.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "master item service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "masterItemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "master item deleted"})
	}
}
