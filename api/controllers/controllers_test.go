package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/rdelacruz/stocktrail-backend/api/middleware"
	"github.com/rdelacruz/stocktrail-backend/pkg/db/models"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
)

func withSession(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(middleware.WithSessionUser(req.Context(), user))
}

func ownerUser() *models.User {
	return &models.User{ID: uuid.New(), Name: "Owner", Email: "owner@example.com", Role: enums.UserRoleOwner}
}

func managerUser(storeID uuid.UUID, createdBy uuid.UUID) *models.User {
	return &models.User{
		ID:        uuid.New(),
		Name:      "Manager",
		Email:     "manager@example.com",
		Role:      enums.UserRoleManager,
		StoreID:   &storeID,
		CreatedBy: &createdBy,
	}
}

// serveWithParams mounts the handler on a throwaway chi router so URL
// parameters resolve inside the handler.
func serveWithParams(t *testing.T, method, pattern string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	router := chi.NewRouter()
	router.Method(method, pattern, handler)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestActorFromMissingSession(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	if _, err := actorFrom(req); err == nil {
		t.Fatal("expected error for request without session user")
	}
}
