package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/markobarraza/cafe-marketplace/internal/core/domain"
	"github.com/markobarraza/cafe-marketplace/internal/security/token"
)

func issueToken(t *testing.T, issuer *token.Issuer, id int64, email, role string) string {
	t.Helper()
	signed, err := issuer.Issue(&domain.User{ID: id, Email: email, Role: role})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func TestAuth_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("fixture-secret", time.Hour)
	signed := issueToken(t, issuer, 7, "ana@example.com", "vendedor")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(issuer, zerolog.Nop())(func(c echo.Context) error {
		called = true
		claims, ok := Identity(c)
		if !ok {
			t.Fatalf("claims not attached")
		}
		if claims.UserID != 7 || claims.Email != "ana@example.com" || claims.Role != "vendedor" {
			t.Fatalf("unexpected claims: %+v", claims)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("fixture-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(issuer, zerolog.Nop())(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_BadScheme(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("fixture-secret", time.Hour)
	signed := issueToken(t, issuer, 7, "ana@example.com", "vendedor")

	for _, header := range []string{"Token " + signed, "Bearer", "Bearer   ", signed} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(issuer, zerolog.Nop())(func(c echo.Context) error {
			t.Fatalf("should not reach next for header %q", header)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

// Garbage, expired, and tampered tokens must be indistinguishable to the
// caller: same status, same message.
func TestAuth_RejectionIsUniform(t *testing.T) {
	e := echo.New()
	issuer := token.NewIssuer("fixture-secret", time.Hour)

	expired := issueToken(t, token.NewIssuer("fixture-secret", -time.Minute), 7, "ana@example.com", "vendedor")

	tampered := issueToken(t, issuer, 7, "ana@example.com", "vendedor")
	last := tampered[len(tampered)-1]
	flip := byte('A')
	if last == 'A' {
		flip = 'B'
	}
	tampered = tampered[:len(tampered)-1] + string(flip)

	bodies := make(map[string]struct{})
	for _, tok := range []string{"not-a-token", expired, tampered} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Auth(issuer, zerolog.Nop())(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		bodies[rec.Body.String()] = struct{}{}
	}

	if len(bodies) != 1 {
		t.Fatalf("expected identical rejection bodies, got %d variants", len(bodies))
	}
}

func TestIdentity_Absent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if _, ok := Identity(c); ok {
		t.Fatalf("expected no identity on bare context")
	}
}
