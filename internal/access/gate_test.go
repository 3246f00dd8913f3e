package access

import (
	"testing"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
)

var (
	storeA = uuid.New()
	storeB = uuid.New()
)

func owner() Actor {
	return Actor{ID: uuid.New(), Role: enums.UserRoleOwner}
}

func manager(storeID uuid.UUID, createdBy uuid.UUID) Actor {
	return Actor{ID: uuid.New(), Role: enums.UserRoleManager, StoreID: &storeID, CreatedBy: &createdBy}
}

func employee(storeID uuid.UUID) Actor {
	return Actor{ID: uuid.New(), Role: enums.UserRoleEmployee, StoreID: &storeID}
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected coded error %s, got %v", code, err)
	}
	if typed.Code() != code {
		t.Fatalf("expected code %s, got %s", code, typed.Code())
	}
}

func TestItemDecisionTable(t *testing.T) {
	own := owner()
	otherOwner := owner()
	mgr := manager(storeA, own.ID)
	emp := employee(storeA)

	ownedInA := ItemRef{OwnerID: own.ID, StoreID: storeA}
	ownedInB := ItemRef{OwnerID: own.ID, StoreID: storeB}
	foreignInA := ItemRef{OwnerID: otherOwner.ID, StoreID: storeA}

	cases := []struct {
		name      string
		actor     Actor
		item      ItemRef
		canRead   bool
		canUpdate bool
		canDelete bool
	}{
		{"owner over own item", own, ownedInA, true, true, true},
		{"owner over own item in any store", own, ownedInB, true, true, true},
		{"owner over another owner's item", own, foreignInA, false, false, false},
		{"manager over item in assigned store", mgr, ownedInA, true, true, true},
		{"manager over foreign-owner item in assigned store", mgr, foreignInA, true, true, true},
		{"manager over item in other store", mgr, ownedInB, false, false, false},
		{"employee over item in assigned store", emp, ownedInA, true, true, false},
		{"employee over item in other store", emp, ownedInB, false, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanReadItem(tc.actor, tc.item) == nil; got != tc.canRead {
				t.Fatalf("read: expected %v got %v", tc.canRead, got)
			}
			if got := CanUpdateItem(tc.actor, tc.item) == nil; got != tc.canUpdate {
				t.Fatalf("update: expected %v got %v", tc.canUpdate, got)
			}
			if got := CanDeleteItem(tc.actor, tc.item) == nil; got != tc.canDelete {
				t.Fatalf("delete: expected %v got %v", tc.canDelete, got)
			}
		})
	}
}

func TestEmployeeNeverDeletes(t *testing.T) {
	emp := employee(storeA)
	err := CanDeleteItem(emp, ItemRef{OwnerID: uuid.New(), StoreID: storeA})
	assertCode(t, err, pkgerrors.CodeForbidden)
}

func TestManagerWithoutAssignmentDenied(t *testing.T) {
	mgr := Actor{ID: uuid.New(), Role: enums.UserRoleManager}
	item := ItemRef{OwnerID: uuid.New(), StoreID: storeA}

	if CanReadItem(mgr, item) == nil {
		t.Fatal("unassigned manager should not read items")
	}
	if CanUpdateItem(mgr, item) == nil {
		t.Fatal("unassigned manager should not update items")
	}
	if CanDeleteItem(mgr, item) == nil {
		t.Fatal("unassigned manager should not delete items")
	}
}

func TestCanListItems(t *testing.T) {
	if err := CanListItems(owner()); err != nil {
		t.Fatalf("owner should list: %v", err)
	}
	if err := CanListItems(manager(storeA, uuid.New())); err != nil {
		t.Fatalf("assigned manager should list: %v", err)
	}
	if err := CanListItems(employee(storeA)); err != nil {
		t.Fatalf("assigned employee should list: %v", err)
	}

	unassigned := Actor{ID: uuid.New(), Role: enums.UserRoleEmployee}
	assertCode(t, CanListItems(unassigned), pkgerrors.CodeForbidden)

	bogus := Actor{ID: uuid.New(), Role: enums.UserRole("superuser")}
	assertCode(t, CanListItems(bogus), pkgerrors.CodeForbidden)
}

func TestItemCreateAttributionOwner(t *testing.T) {
	own := owner()

	attr, err := ItemCreateAttribution(own, storeB)
	if err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if attr.OwnerID != own.ID {
		t.Fatalf("expected owner attribution to self, got %s", attr.OwnerID)
	}
	if attr.StoreID != storeB {
		t.Fatalf("expected caller-specified store %s, got %s", storeB, attr.StoreID)
	}

	if _, err := ItemCreateAttribution(own, uuid.Nil); err == nil {
		t.Fatal("owner create without store should fail validation")
	}
}

func TestItemCreateAttributionManagerIgnoresRequestedStore(t *testing.T) {
	own := owner()
	mgr := manager(storeA, own.ID)

	attr, err := ItemCreateAttribution(mgr, storeB)
	if err != nil {
		t.Fatalf("manager create: %v", err)
	}
	if attr.StoreID != storeA {
		t.Fatalf("manager-created item must land in assigned store %s, got %s", storeA, attr.StoreID)
	}
	if attr.OwnerID != own.ID {
		t.Fatalf("manager-created item must belong to creating owner %s, got %s", own.ID, attr.OwnerID)
	}
	if attr.OwnerID == mgr.ID {
		t.Fatal("manager must never own the items it creates")
	}
}

func TestItemCreateAttributionEmployeeForbidden(t *testing.T) {
	_, err := ItemCreateAttribution(employee(storeA), storeA)
	assertCode(t, err, pkgerrors.CodeForbidden)
}

func TestItemCreateAttributionManagerEdgeCases(t *testing.T) {
	noStore := Actor{ID: uuid.New(), Role: enums.UserRoleManager, CreatedBy: ptr(uuid.New())}
	if _, err := ItemCreateAttribution(noStore, storeA); err == nil {
		t.Fatal("manager without assignment should not create items")
	}

	noLineage := Actor{ID: uuid.New(), Role: enums.UserRoleManager, StoreID: &storeA}
	if _, err := ItemCreateAttribution(noLineage, storeA); err == nil {
		t.Fatal("manager without creating owner should not create items")
	}
}

func TestCanAssignRoleHierarchy(t *testing.T) {
	cases := []struct {
		name    string
		actor   enums.UserRole
		target  enums.UserRole
		allowed bool
	}{
		{"owner creates manager", enums.UserRoleOwner, enums.UserRoleManager, true},
		{"owner creates employee", enums.UserRoleOwner, enums.UserRoleEmployee, true},
		{"owner creates owner", enums.UserRoleOwner, enums.UserRoleOwner, false},
		{"manager creates employee", enums.UserRoleManager, enums.UserRoleEmployee, true},
		{"manager creates manager", enums.UserRoleManager, enums.UserRoleManager, false},
		{"manager creates owner", enums.UserRoleManager, enums.UserRoleOwner, false},
		{"employee creates employee", enums.UserRoleEmployee, enums.UserRoleEmployee, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CanAssignRole(tc.actor, tc.target)
			if tc.allowed && err != nil {
				t.Fatalf("expected allowed, got %v", err)
			}
			if !tc.allowed {
				assertCode(t, err, pkgerrors.CodeInvalidRole)
			}
		})
	}
}

func TestCanAssignRoleRejectsUnknownRole(t *testing.T) {
	err := CanAssignRole(enums.UserRoleOwner, enums.UserRole("wizard"))
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestRequireOwner(t *testing.T) {
	if err := RequireOwner(owner()); err != nil {
		t.Fatalf("owner should pass: %v", err)
	}
	assertCode(t, RequireOwner(manager(storeA, uuid.New())), pkgerrors.CodeForbidden)
	assertCode(t, RequireOwner(employee(storeA)), pkgerrors.CodeForbidden)
}

func TestCanChangeItemStore(t *testing.T) {
	if !CanChangeItemStore(owner()) {
		t.Fatal("owner should be able to move items between stores")
	}
	if CanChangeItemStore(manager(storeA, uuid.New())) {
		t.Fatal("manager must not change an item's store")
	}
	if CanChangeItemStore(employee(storeA)) {
		t.Fatal("employee must not change an item's store")
	}
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}
