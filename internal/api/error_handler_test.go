package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/orgstack/employee-management/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_NotFoundErrors(t *testing.T) {
	for _, err := range []error{
		domain.ErrDepartmentNotFound,
		domain.ErrEmployeeNotFound,
		domain.ErrUserNotFound,
	} {
		code, body := renderError(t, err)
		if code != http.StatusNotFound {
			t.Errorf("%v: expected 404, got %d", err, code)
		}
		if body["error"] == "" {
			t.Errorf("%v: expected error message in body", err)
		}
	}
}

func TestHTTPErrorHandler_ConflictsAreBadRequests(t *testing.T) {
	for _, err := range []error{
		domain.ErrDepartmentNameTaken,
		domain.ErrEmployeeEmailTaken,
		domain.ErrUsernameTaken,
		domain.ErrUserEmailTaken,
		domain.ErrInvalidRole,
	} {
		code, body := renderError(t, err)
		if code != http.StatusBadRequest {
			t.Errorf("%v: expected 400, got %d", err, code)
		}
		if body["error"] != err.Error() {
			t.Errorf("%v: expected sentinel message, got %v", err, body["error"])
		}
	}
}

func TestHTTPErrorHandler_InvalidCredentials(t *testing.T) {
	code, _ := renderError(t, domain.ErrInvalidCredentials)
	if code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusForbidden, "forbidden"))
	if code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", code)
	}
	if body["error"] != "forbidden" {
		t.Errorf("expected message %q, got %v", "forbidden", body["error"])
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", code)
	}
	msg, _ := body["error"].(string)
	if msg != "internal server error" {
		t.Errorf("expected opaque message, got %q", msg)
	}
	if strings.Contains(msg, "mongo") {
		t.Error("internal error details must not leak to the client")
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.NoContent(http.StatusNoContent); err != nil {
		t.Fatalf("commit response: %v", err)
	}

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)
	if rec.Code != http.StatusNoContent {
		t.Errorf("committed response must not be rewritten, got %d", rec.Code)
	}
}
