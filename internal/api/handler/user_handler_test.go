package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/communitycare/report-system/internal/core/domain"
)

type stubUserService struct {
	listFn       func(ctx context.Context, requesterID string) ([]*domain.User, error)
	updateRoleFn func(ctx context.Context, actorID, userID, role string) error
	deleteFn     func(ctx context.Context, actorID, userID string) error
}

func (s *stubUserService) List(ctx context.Context, requesterID string) ([]*domain.User, error) {
	return s.listFn(ctx, requesterID)
}

func (s *stubUserService) UpdateRole(ctx context.Context, actorID, userID, role string) error {
	return s.updateRoleFn(ctx, actorID, userID, role)
}

func (s *stubUserService) Delete(ctx context.Context, actorID, userID string) error {
	return s.deleteFn(ctx, actorID, userID)
}

func TestUserHandler_List_PassesRequesterID(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		listFn: func(ctx context.Context, requesterID string) ([]*domain.User, error) {
			if requesterID != "admin1" {
				t.Fatalf("expected requester admin1, got %s", requesterID)
			}
			return []*domain.User{{ID: "u1", Username: "alice"}}, nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin1", "admin", "root")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Users []*domain.User `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].Username != "alice" {
		t.Fatalf("unexpected users: %+v", resp.Users)
	}
}

func TestUserHandler_UpdateRole_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateRoleFn: func(ctx context.Context, actorID, userID, role string) error {
			if actorID != "admin1" || userID != "u1" || role != "admin" {
				t.Fatalf("unexpected args: %s %s %s", actorID, userID, role)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/u1/role", strings.NewReader(`{"role":"admin"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin1", "admin", "root")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.UpdateRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_UpdateRole_InvalidRolePropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateRoleFn: func(ctx context.Context, actorID, userID, role string) error {
			return domain.ErrInvalidRole
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/users/u1/role", strings.NewReader(`{"role":"superuser"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin1", "admin", "root")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	err := handler.UpdateRole(c)

	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole to propagate, got %v", err)
	}
}

func TestUserHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, actorID, userID string) error {
			if actorID != "admin1" || userID != "u1" {
				t.Fatalf("unexpected args: %s %s", actorID, userID)
			}
			return nil
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/users/u1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin1", "admin", "root")
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete_NotFoundPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, actorID, userID string) error {
			return domain.ErrUserNotFound
		},
	}
	handler := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/users/missing", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "admin1", "admin", "root")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Delete(c)

	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}
