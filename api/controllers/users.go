package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/api/responses"
	"github.com/rdelacruz/stocktrail-backend/api/validators"
	"github.com/rdelacruz/stocktrail-backend/internal/users"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
	"github.com/rdelacruz/stocktrail-backend/pkg/logger"
)

type userCreateRequest struct {
	Name             string     `json:"name" validate:"required"`
	Email            string     `json:"email" validate:"required,email"`
	Password         string     `json:"password,omitempty" validate:"omitempty,min=8"`
	Role             string     `json:"role,omitempty"`
	StoreID          *uuid.UUID `json:"storeId,omitempty"`
	CanEditInventory bool       `json:"canEditInventory,omitempty"`
	CanDeleteItems   bool       `json:"canDeleteItems,omitempty"`
	CanViewReports   bool       `json:"canViewReports,omitempty"`
	CanManageTeam    bool       `json:"canManageTeam,omitempty"`
}

func (r userCreateRequest) toInput() users.CreateUserInput {
	return users.CreateUserInput{
		Name:             validators.SanitizeString(r.Name, maxShortText),
		Email:            r.Email,
		Password:         r.Password,
		Role:             enums.UserRole(r.Role),
		StoreID:          r.StoreID,
		CanEditInventory: r.CanEditInventory,
		CanDeleteItems:   r.CanDeleteItems,
		CanViewReports:   r.CanViewReports,
		CanManageTeam:    r.CanManageTeam,
	}
}

type userUpdateRequest struct {
	Name             *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Email            *string    `json:"email,omitempty" validate:"omitempty,email"`
	Password         *string    `json:"password,omitempty" validate:"omitempty,min=8"`
	Role             *string    `json:"role,omitempty"`
	StoreID          *uuid.UUID `json:"storeId,omitempty"`
	CanEditInventory *bool      `json:"canEditInventory,omitempty"`
	CanDeleteItems   *bool      `json:"canDeleteItems,omitempty"`
	CanViewReports   *bool      `json:"canViewReports,omitempty"`
	CanManageTeam    *bool      `json:"canManageTeam,omitempty"`
}

func (r userUpdateRequest) toInput() users.UpdateUserInput {
	input := users.UpdateUserInput{
		Name:             sanitizePtr(r.Name, maxShortText),
		Email:            r.Email,
		Password:         r.Password,
		StoreID:          r.StoreID,
		CanEditInventory: r.CanEditInventory,
		CanDeleteItems:   r.CanDeleteItems,
		CanViewReports:   r.CanViewReports,
		CanManageTeam:    r.CanManageTeam,
	}
	if r.Role != nil {
		role := enums.UserRole(*r.Role)
		input.Role = &role
	}
	return input
}

// userCreatedResponse carries the new account plus the generated temporary
// password when the creator supplied none.
type userCreatedResponse struct {
	User              *users.UserDTO `json:"user"`
	TemporaryPassword string         `json:"temporaryPassword,omitempty"`
}

// UserList returns every account. Owner only.
func UserList(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
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

// UserListManaged returns the accounts the actor created.
func UserListManaged(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListManaged(r.Context(), actor)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, list)
	}
}

// UserCreate provisions a staff account.
func UserCreate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req userCreateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, tempPassword, err := svc.Create(r.Context(), actor, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, userCreatedResponse{
			User:              user,
			TemporaryPassword: tempPassword,
		})
	}
}

// UserUpdate adjusts an account's mutable fields.
func UserUpdate(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req userUpdateRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Update(r.Context(), actor, id, req.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// UserDelete removes an account.
func UserDelete(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		actor, err := actorFrom(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), actor, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "user deleted"})
	}
}
