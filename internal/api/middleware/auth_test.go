package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

type stubDirectory struct {
	users map[string]*domain.User
}

func (d *stubDirectory) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (d *stubDirectory) FindCandidateProfileByID(_ context.Context, _ string) (*domain.CandidateProfile, error) {
	return nil, domain.ErrProfileNotFound
}

func (d *stubDirectory) HasEmployerLink(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func newTestAuthorizer(t *testing.T, users ...*domain.User) (*access.Authorizer, map[string]string) {
	t.Helper()
	dir := &stubDirectory{users: make(map[string]*domain.User)}
	tokens := access.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	authz := access.NewAuthorizer(tokens, dir)

	issued := make(map[string]string)
	for _, u := range users {
		dir.users[u.ID] = u
		accessToken, _, _, err := tokens.IssuePair(u)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		issued[u.ID] = accessToken
	}
	return authz, issued
}

func TestAuth_ValidToken(t *testing.T) {
	user := &domain.User{ID: "u-1", Role: domain.RoleCandidate, Active: true}
	authz, tokens := newTestAuthorizer(t, user)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokens["u-1"])
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(authz)(func(c echo.Context) error {
		called = true
		got := Principal(c)
		if got == nil || got.ID != "u-1" {
			t.Fatalf("principal not set, got %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	authz, _ := newTestAuthorizer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(authz)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	authz, _ := newTestAuthorizer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(authz)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	// A token whose subject no longer exists is indistinguishable from a
	// forged one.
	user := &domain.User{ID: "u-gone", Role: domain.RoleCandidate, Active: true}
	_, tokens := newTestAuthorizer(t, user)
	authz, _ := newTestAuthorizer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tokens["u-gone"])
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(authz)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}

func TestOptionalAuth_Anonymous(t *testing.T) {
	authz, _ := newTestAuthorizer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuth(authz)(func(c echo.Context) error {
		called = true
		if Principal(c) != nil {
			t.Fatalf("expected nil principal")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalAuth_InvalidTokenStillRejected(t *testing.T) {
	authz, _ := newTestAuthorizer(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth(authz)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
}
