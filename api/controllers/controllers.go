package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/api/middleware"
	"github.com/rdelacruz/stocktrail-backend/api/validators"
	"github.com/rdelacruz/stocktrail-backend/internal/access"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
)

// Free-text payload fields are trimmed and bounded before they reach the
// services. Keys like emails and item codes are left to their own validators.
const (
	maxShortText = 255
	maxLongText  = 2000
)

// actorFrom resolves the access actor seeded by the auth middleware.
func actorFrom(r *http.Request) (access.Actor, error) {
	user := middleware.SessionUserFromContext(r.Context())
	if user == nil {
		return access.Actor{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	return access.ActorFromUser(user), nil
}

func sanitizePtr(v *string, maxLen int) *string {
	if v == nil {
		return nil
	}
	clean := validators.SanitizeString(*v, maxLen)
	return &clean
}

// pathUUID parses a chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id")
	}
	return id, nil
}
