package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// principalKey is the context key under which the resolved user is stored.
const principalKey = "principal"

// Auth authenticates the bearer token and injects the resolved user into the
// request context. The token must verify AND resolve to a stored account;
// both failures produce the same 401. Inactive accounts pass through here:
// activity is gated per-operation so the error can say "account disabled".
func Auth(authz *access.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := authz.Authenticate(c.Request().Context(), credential)
			if err != nil {
				return err
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves a principal when a bearer token is present and passes
// anonymous requests through with none. A present-but-invalid token is still
// a 401: silently downgrading to anonymous would mask client bugs.
func OptionalAuth(authz *access.Authorizer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}

			credential, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := authz.Authenticate(c.Request().Context(), credential)
			if err != nil {
				return err
			}

			c.Set(principalKey, user)
			return next(c)
		}
	}
}

// Principal returns the authenticated user, or nil for anonymous requests.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
