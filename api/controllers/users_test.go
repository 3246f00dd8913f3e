package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/internal/access"
	"github.com/rdelacruz/stocktrail-backend/internal/users"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	pkgerrors "github.com/rdelacruz/stocktrail-backend/pkg/errors"
)

type stubUserService struct {
	listFn        func(actor access.Actor) ([]users.UserDTO, error)
	listManagedFn func(actor access.Actor) ([]users.UserDTO, error)
	createFn      func(actor access.Actor, input users.CreateUserInput) (*users.UserDTO, string, error)
	updateFn      func(actor access.Actor, targetID uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error)
	deleteFn      func(actor access.Actor, targetID uuid.UUID) error
}

func (s stubUserService) List(ctx context.Context, actor access.Actor) ([]users.UserDTO, error) {
	return s.listFn(actor)
}

func (s stubUserService) ListManaged(ctx context.Context, actor access.Actor) ([]users.UserDTO, error) {
	return s.listManagedFn(actor)
}

func (s stubUserService) Create(ctx context.Context, actor access.Actor, input users.CreateUserInput) (*users.UserDTO, string, error) {
	return s.createFn(actor, input)
}

func (s stubUserService) Update(ctx context.Context, actor access.Actor, targetID uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error) {
	return s.updateFn(actor, targetID, input)
}

func (s stubUserService) Delete(ctx context.Context, actor access.Actor, targetID uuid.UUID) error {
	return s.deleteFn(actor, targetID)
}

func (s stubUserService) ResolveSessionUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "user not found")
}

func TestUserCreateReturnsTemporaryPassword(t *testing.T) {
	owner := ownerUser()
	created := &users.UserDTO{ID: uuid.New(), Name: "New Hire", Email: "hire@example.com", Role: enums.UserRoleEmployee}

	svc := stubUserService{createFn: func(actor access.Actor, input users.CreateUserInput) (*users.UserDTO, string, error) {
		if input.Password != "" {
			t.Fatalf("expected empty password got %q", input.Password)
		}
		return created, "temp-secret-123", nil
	}}

	body := []byte(`{"name":"New Hire","email":"hire@example.com","role":"employee"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body)), owner)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	UserCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			User              *users.UserDTO `json:"user"`
			TemporaryPassword string         `json:"temporaryPassword"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.User == nil || envelope.Data.User.Email != "hire@example.com" {
		t.Fatalf("expected user in payload got %+v", envelope.Data.User)
	}
	if envelope.Data.TemporaryPassword != "temp-secret-123" {
		t.Fatalf("expected temporary password got %q", envelope.Data.TemporaryPassword)
	}
}

func TestUserCreateInvalidRoleIs403(t *testing.T) {
	storeID := uuid.New()
	manager := managerUser(storeID, uuid.New())

	svc := stubUserService{createFn: func(actor access.Actor, input users.CreateUserInput) (*users.UserDTO, string, error) {
		return nil, "", pkgerrors.New(pkgerrors.CodeInvalidRole, "managers can only create employees")
	}}

	body := []byte(`{"name":"M2","email":"m2@example.com","role":"manager"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewReader(body)), manager)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	UserCreate(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeInvalidRole) {
		t.Fatalf("expected INVALID_ROLE_ASSIGNMENT got %s", envelope.Error.Code)
	}
}

func TestUserListForbiddenForManager(t *testing.T) {
	manager := managerUser(uuid.New(), uuid.New())

	svc := stubUserService{listFn: func(actor access.Actor) ([]users.UserDTO, error) {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "owner role required")
	}}

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/users", nil), manager)
	resp := httptest.NewRecorder()
	UserList(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
}

func TestUserListManagedPassesActor(t *testing.T) {
	manager := managerUser(uuid.New(), uuid.New())

	svc := stubUserService{listManagedFn: func(actor access.Actor) ([]users.UserDTO, error) {
		if actor.ID != manager.ID {
			t.Fatalf("expected actor %s got %s", manager.ID, actor.ID)
		}
		return []users.UserDTO{}, nil
	}}

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/users/managed", nil), manager)
	resp := httptest.NewRecorder()
	UserListManaged(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestUserDeleteInvalidID(t *testing.T) {
	svc := stubUserService{deleteFn: func(access.Actor, uuid.UUID) error {
		t.Fatal("service should not be called")
		return nil
	}}

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/users/nope", nil), ownerUser())
	resp := serveWithParams(t, http.MethodDelete, "/api/users/{userId}", UserDelete(svc, nil), req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUserUpdatePassesTarget(t *testing.T) {
	targetID := uuid.New()
	updated := &users.UserDTO{ID: targetID, Name: "Renamed"}

	svc := stubUserService{updateFn: func(actor access.Actor, id uuid.UUID, input users.UpdateUserInput) (*users.UserDTO, error) {
		if id != targetID {
			t.Fatalf("expected target %s got %s", targetID, id)
		}
		if input.Name == nil || *input.Name != "Renamed" {
			t.Fatalf("unexpected input %+v", input)
		}
		return updated, nil
	}}

	body := []byte(`{"name":"Renamed"}`)
	req := withSession(httptest.NewRequest(http.MethodPut, "/api/users/"+targetID.String(), bytes.NewReader(body)), ownerUser())
	req.Header.Set("Content-Type", "application/json")
	resp := serveWithParams(t, http.MethodPut, "/api/users/{userId}", UserUpdate(svc, nil), req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}
