package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/api/responses"
	"github.com/rdelacruz/stocktrail-backend/api/validators"
	"github.com/rdelacruz/stocktrail-backend/internal/activity"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
	"github.com/rdelacruz/stocktrail-backend/pkg/pagination"
)

type logAppendRequest struct {
	Action   string         `json:"action" validate:"required"`
	ItemID   *uuid.UUID     `json:"itemId,omitempty"`
	ItemName string         `json:"itemName,omitempty"`
	Details  string         `json:"details,omitempty"`
	OldValue map[string]any `json:"oldValue,omitempty"`
	NewValue map[string]any `json:"newValue,omitempty"`
}

func (r logAppendRequest) toInput() activity.AppendInput {
	return activity.AppendInput{
		Action:   r.Action,
		ItemID:   r.ItemID,
		ItemName: validators.SanitizeString(r.ItemName, maxShortText),
		Details:  validators.SanitizeString(r.Details, maxLongText),
		OldValue: r.OldValue,
		NewValue: r.NewValue,
	}
}

// LogList returns a page of audit entries, newest first.
func LogList(svc activity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "activity service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}

		page, err := svc.List(r.Context(), actor, params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

// LogAppend records an audit entry attributed to the actor.
func LogAppend(svc activity.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "activity service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req logAppendRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, err := svc.Append(r.Context(), actor, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, entry)
	}
}
