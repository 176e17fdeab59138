package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-tracker/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json envelope: %v", err)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrUserExists, http.StatusBadRequest, "User already exists"},
		{domain.ErrEmailTaken, http.StatusBadRequest, "Email already exists"},
		{domain.ErrInvalidCredentials, http.StatusBadRequest, "Invalid credentials"},
		{domain.ErrPasswordRequired, http.StatusBadRequest, "Current password is required to change password"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrTransactionNotFound, http.StatusNotFound, "Transaction not found"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Unauthorized"},
	}

	for _, tc := range cases {
		code, msg := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if msg != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, msg)
		}
	}
}

func TestErrorHandler_EchoError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "No token provided"))
	if code != http.StatusUnauthorized || msg != "No token provided" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: socket closed"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "Internal server error" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := errors.Join(errors.New("update profile"), domain.ErrEmailTaken)
	code, _ := renderError(t, wrapped)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for wrapped ErrEmailTaken, got %d", code)
	}
}
