// Package access centralizes every role and ownership decision in one pure,
// stateless module. Handlers resolve an Actor from the request, describe the
// target record, and ask this package for a verdict; nothing in here touches
// storage or mutates state.
package access

import (
	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
)

// Actor is the authenticated identity a decision is made for. The fields are
// re-read from the users table on every request, never cached in the token.
type Actor struct {
	ID        uuid.UUID
	Role      enums.UserRole
	StoreID   *uuid.UUID
	CreatedBy *uuid.UUID
}

// ItemRef describes the ownership fields of an item under decision.
type ItemRef struct {
	OwnerID uuid.UUID
	StoreID uuid.UUID
}

// Attribution is the server-forced ownership of a new item. Managers never
// get to choose: the item belongs to the owner that created the manager, in
// the manager's assigned store.
type Attribution struct {
	OwnerID uuid.UUID
	StoreID uuid.UUID
}

func (a Actor) isOwner(item ItemRef) bool {
	return a.Role == enums.UserRoleOwner && item.OwnerID == a.ID
}

func (a Actor) isInAssignedStore(item ItemRef) bool {
	return a.Role.IsStaff() && a.StoreID != nil && item.StoreID == *a.StoreID
}

func (a Actor) isManagerInAssignedStore(item ItemRef) bool {
	return a.Role == enums.UserRoleManager && a.StoreID != nil && item.StoreID == *a.StoreID
}

// CanReadItem gates single-item reads: owners read their own items, staff
// read items in their assigned store.
func CanReadItem(actor Actor, item ItemRef) error {
	if actor.isOwner(item) || actor.isInAssignedStore(item) {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to view this item")
}

// CanUpdateItem mirrors the read scope: employees with a store assignment can
// update items in it just like managers. The fine-grained permission flags
// stay a client-side concern.
func CanUpdateItem(actor Actor, item ItemRef) error {
	if actor.isOwner(item) || actor.isInAssignedStore(item) {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to modify this item")
}

// CanDeleteItem narrows the staff side to managers: employees never delete,
// even when the item sits in their assigned store.
func CanDeleteItem(actor Actor, item ItemRef) error {
	if actor.isOwner(item) || actor.isManagerInAssignedStore(item) {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to delete this item")
}

// CanListItems gates the collection read. Owners always pass (their scope is
// applied as a query filter); staff must carry a store assignment. A staff
// account without one gets Forbidden, not an empty list.
func CanListItems(actor Actor) error {
	switch actor.Role {
	case enums.UserRoleOwner:
		return nil
	case enums.UserRoleManager, enums.UserRoleEmployee:
		if actor.StoreID == nil {
			return pkgerrors.New(pkgerrors.CodeForbidden, "no store assigned")
		}
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeForbidden, "unknown role")
	}
}

// ItemCreateAttribution resolves who a new item belongs to and which store it
// lands in. Owners choose the store and own the item themselves. Managers are
// pinned to their assigned store, and the item is attributed to the owner
// that created the manager; any client-supplied store id is ignored.
// Employees cannot create items.
func ItemCreateAttribution(actor Actor, requestedStoreID uuid.UUID) (Attribution, error) {
	switch actor.Role {
	case enums.UserRoleOwner:
		if requestedStoreID == uuid.Nil {
			return Attribution{}, pkgerrors.New(pkgerrors.CodeValidation, "storeId is required")
		}
		return Attribution{OwnerID: actor.ID, StoreID: requestedStoreID}, nil
	case enums.UserRoleManager:
		if actor.StoreID == nil {
			return Attribution{}, pkgerrors.New(pkgerrors.CodeForbidden, "no store assigned")
		}
		if actor.CreatedBy == nil {
			return Attribution{}, pkgerrors.New(pkgerrors.CodeForbidden, "manager has no owning account")
		}
		return Attribution{OwnerID: *actor.CreatedBy, StoreID: *actor.StoreID}, nil
	default:
		return Attribution{}, pkgerrors.New(pkgerrors.CodeForbidden, "not authorized to create items")
	}
}

// CanChangeItemStore reports whether the actor may move an item to another
// store. Only owners can; for staff the storeId field is immutable.
func CanChangeItemStore(actor Actor) bool {
	return actor.Role == enums.UserRoleOwner
}

// CanAssignRole validates the role-creation hierarchy: owners mint managers
// and employees (never more owners), managers mint employees only, employees
// mint no one.
func CanAssignRole(actorRole, newRole enums.UserRole) error {
	if !newRole.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown role")
	}

	switch actorRole {
	case enums.UserRoleOwner:
		if newRole == enums.UserRoleOwner {
			return pkgerrors.New(pkgerrors.CodeInvalidRole, "owners cannot create additional owner accounts")
		}
		return nil
	case enums.UserRoleManager:
		if newRole != enums.UserRoleEmployee {
			return pkgerrors.New(pkgerrors.CodeInvalidRole, "managers may only create employee accounts")
		}
		return nil
	default:
		return pkgerrors.New(pkgerrors.CodeInvalidRole, "not authorized to create accounts")
	}
}

// RequireOwner is the coarse admin gate used by store mutations, user
// listing and everything touching master items.
func RequireOwner(actor Actor) error {
	if actor.Role != enums.UserRoleOwner {
		return pkgerrors.New(pkgerrors.CodeForbidden, "owner role required")
	}
	return nil
}
