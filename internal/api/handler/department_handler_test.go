package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orgstack/employee-management/internal/core/domain"
	"github.com/orgstack/employee-management/internal/core/ports"
)

type stubDepartmentService struct {
	createFn func(ctx context.Context, input ports.DepartmentInput) (*domain.Department, error)
	getFn    func(ctx context.Context, id string) (*domain.Department, error)
	listFn   func(ctx context.Context) ([]*domain.Department, error)
	updateFn func(ctx context.Context, id string, input ports.DepartmentInput) (*domain.Department, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubDepartmentService) Create(ctx context.Context, input ports.DepartmentInput) (*domain.Department, error) {
	return s.createFn(ctx, input)
}

func (s *stubDepartmentService) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	return s.getFn(ctx, id)
}

func (s *stubDepartmentService) List(ctx context.Context) ([]*domain.Department, error) {
	return s.listFn(ctx)
}

func (s *stubDepartmentService) Update(ctx context.Context, id string, input ports.DepartmentInput) (*domain.Department, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubDepartmentService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestDepartmentHandler_Create_Success(t *testing.T) {
	stub := &stubDepartmentService{
		createFn: func(_ context.Context, input ports.DepartmentInput) (*domain.Department, error) {
			if input.Name != "Engineering" || input.Location != "Berlin" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Department{ID: "dept_1", Name: input.Name, Location: input.Location}, nil
		},
	}
	handler := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/api/departments",
		`{"name":"Engineering","location":"Berlin"}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "dept_1" || resp["name"] != "Engineering" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestDepartmentHandler_Create_NameTooShort(t *testing.T) {
	stub := &stubDepartmentService{
		createFn: func(_ context.Context, _ ports.DepartmentInput) (*domain.Department, error) {
			t.Fatal("service must not be called on a validation failure")
			return nil, nil
		},
	}
	handler := NewDepartmentHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/departments", `{"name":"X"}`)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestDepartmentHandler_Create_ConflictPropagates(t *testing.T) {
	stub := &stubDepartmentService{
		createFn: func(_ context.Context, _ ports.DepartmentInput) (*domain.Department, error) {
			return nil, domain.ErrDepartmentNameTaken
		},
	}
	handler := NewDepartmentHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/departments",
		`{"name":"Engineering","location":"Berlin"}`)

	err := handler.Create(c)
	if !errors.Is(err, domain.ErrDepartmentNameTaken) {
		t.Fatalf("expected ErrDepartmentNameTaken to propagate, got %v", err)
	}
}

func TestDepartmentHandler_Get_NotFoundPropagates(t *testing.T) {
	stub := &stubDepartmentService{
		getFn: func(_ context.Context, id string) (*domain.Department, error) {
			return nil, domain.ErrDepartmentNotFound
		},
	}
	handler := NewDepartmentHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/api/departments/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrDepartmentNotFound) {
		t.Fatalf("expected ErrDepartmentNotFound to propagate, got %v", err)
	}
}

func TestDepartmentHandler_List(t *testing.T) {
	stub := &stubDepartmentService{
		listFn: func(_ context.Context) ([]*domain.Department, error) {
			return []*domain.Department{
				{ID: "dept_1", Name: "Engineering", Location: "Berlin"},
				{ID: "dept_2", Name: "Sales", Location: "Madrid"},
			}, nil
		},
	}
	handler := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/departments", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(resp))
	}
}

func TestDepartmentHandler_Update_Success(t *testing.T) {
	stub := &stubDepartmentService{
		updateFn: func(_ context.Context, id string, input ports.DepartmentInput) (*domain.Department, error) {
			if id != "dept_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Department{ID: id, Name: input.Name, Location: input.Location}, nil
		},
	}
	handler := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/api/departments/dept_1",
		`{"name":"Platform","location":"Madrid"}`)
	c.SetParamNames("id")
	c.SetParamValues("dept_1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDepartmentHandler_Delete_NoContent(t *testing.T) {
	stub := &stubDepartmentService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "dept_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	handler := NewDepartmentHandler(stub)

	c, rec := newTestContext(http.MethodDelete, "/api/departments/dept_1", "")
	c.SetParamNames("id")
	c.SetParamValues("dept_1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
