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
	"github.com/rdelacruz/stocktrail-backend/internal/activity"
	"github.com/rdelacruz/stocktrail-backend/pkg/enums"
	"github.com/rdelacruz/stocktrail-backend/pkg/pagination"
)

type stubActivityService struct {
	appendFn func(actor access.Actor, input activity.AppendInput) (*activity.LogEntryDTO, error)
	listFn   func(actor access.Actor, params pagination.Params) (*activity.LogPageDTO, error)
}

func (s stubActivityService) Append(ctx context.Context, actor access.Actor, input activity.AppendInput) (*activity.LogEntryDTO, error) {
	return s.appendFn(actor, input)
}

func (s stubActivityService) List(ctx context.Context, actor access.Actor, params pagination.Params) (*activity.LogPageDTO, error) {
	return s.listFn(actor, params)
}

func TestLogAppendReturns201(t *testing.T) {
	owner := ownerUser()
	svc := stubActivityService{appendFn: func(actor access.Actor, input activity.AppendInput) (*activity.LogEntryDTO, error) {
		if input.Action != "add" {
			t.Fatalf("unexpected action %q", input.Action)
		}
		return &activity.LogEntryDTO{ID: uuid.New(), Action: enums.ActivityActionAdd, UserID: actor.ID}, nil
	}}

	body := []byte(`{"action":"add","itemName":"Olive Oil"}`)
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/logs", bytes.NewReader(body)), owner)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	LogAppend(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data activity.LogEntryDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.UserID != owner.ID {
		t.Fatalf("expected entry attributed to %s got %s", owner.ID, envelope.Data.UserID)
	}
}

func TestLogListPassesPagination(t *testing.T) {
	svc := stubActivityService{listFn: func(actor access.Actor, params pagination.Params) (*activity.LogPageDTO, error) {
		if params.Limit != 10 {
			t.Fatalf("expected limit 10 got %d", params.Limit)
		}
		if params.Cursor != "abc" {
			t.Fatalf("expected cursor abc got %q", params.Cursor)
		}
		return &activity.LogPageDTO{Entries: []activity.LogEntryDTO{}}, nil
	}}

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/logs?limit=10&cursor=abc", nil), ownerUser())
	resp := httptest.NewRecorder()
	LogList(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestLogListRejectsOversizedLimit(t *testing.T) {
	svc := stubActivityService{listFn: func(access.Actor, pagination.Params) (*activity.LogPageDTO, error) {
		t.Fatal("service should not be called")
		return nil, nil
	}}

	req := withSession(httptest.NewRequest(http.MethodGet, "/api/logs?limit=5000", nil), ownerUser())
	resp := httptest.NewRecorder()
	LogList(svc, nil).ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
