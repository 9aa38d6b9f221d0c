package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/domain"
	"github.com/taskhive/todo-api/internal/core/ports"
)

type stubUserService struct {
	getFn    func(ctx context.Context, userID string) (*domain.User, error)
	updateFn func(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error)
	deleteFn func(ctx context.Context, userID, password string) (*domain.User, error)
}

func (s *stubUserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.getFn(ctx, userID)
}

func (s *stubUserService) Update(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error) {
	return s.updateFn(ctx, userID, update)
}

func (s *stubUserService) Delete(ctx context.Context, userID, password string) (*domain.User, error) {
	return s.deleteFn(ctx, userID, password)
}

func TestUserHandler_Get_DefaultsLastName(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		getFn: func(ctx context.Context, userID string) (*domain.User, error) {
			return &domain.User{ID: userID, Name: "Al", Email: "a@x.com", PasswordHash: "hash"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := authedContext(e, http.MethodGet, "/api/v1/user", "", "user_1")
	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "user_1" || resp["name"] != "Al" || resp["email"] != "a@x.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if lastName, ok := resp["lastName"]; !ok || lastName != "" {
		t.Fatalf("lastName should default to empty string, got %+v", resp)
	}
	for _, key := range []string{"password", "passwordHash", "password_hash"} {
		if _, leaked := resp[key]; leaked {
			t.Fatalf("password material leaked under %s: %+v", key, resp)
		}
	}
}

func TestUserHandler_Update_ForwardsPatch(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error) {
			if update.Name == nil || *update.Name != "Eva" {
				t.Fatalf("unexpected patch: %+v", update)
			}
			if update.Email != nil || update.LastName != nil {
				t.Fatalf("untouched fields should be nil: %+v", update)
			}
			return &domain.User{ID: userID, Name: *update.Name, Email: "a@x.com"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := authedContext(e, http.MethodPatch, "/api/v1/user", `{"name":"Eva"}`, "user_1")
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Update_EmptyPatchPropagates(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		updateFn: func(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error) {
			return nil, domain.ErrEmptyUpdate
		},
	}
	handler := NewUserHandler(stub)

	c, _ := authedContext(e, http.MethodPatch, "/api/v1/user", `{}`, "user_1")
	if err := handler.Update(c); err != domain.ErrEmptyUpdate {
		t.Fatalf("expected ErrEmptyUpdate to propagate, got %v", err)
	}
}

func TestUserHandler_Delete_RequiresPassword(t *testing.T) {
	e := newTestEcho()
	handler := NewUserHandler(&stubUserService{
		deleteFn: func(ctx context.Context, userID, password string) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	c, _ := authedContext(e, http.MethodDelete, "/api/v1/user", `{}`, "user_1")
	err := handler.Delete(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Delete_ReturnsSnapshot(t *testing.T) {
	e := newTestEcho()
	stub := &stubUserService{
		deleteFn: func(ctx context.Context, userID, password string) (*domain.User, error) {
			if password != "pass123" {
				t.Fatalf("unexpected password: %s", password)
			}
			return &domain.User{ID: userID, Name: "Al", Email: "a@x.com"}, nil
		},
	}
	handler := NewUserHandler(stub)

	c, rec := authedContext(e, http.MethodDelete, "/api/v1/user", `{"password":"pass123"}`, "user_1")
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a@x.com" {
		t.Fatalf("expected pre-deletion snapshot, got %+v", resp)
	}
}
