package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/api/metrics"
	"github.com/talentbridge/recruitment-crm/internal/core/access"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// RequireRoles rejects requests whose principal is inactive or whose role
// does not satisfy any of the allowed roles under the role hierarchy
// (SUPERADMIN satisfies ADMIN). Must run after Auth.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := Principal(c)

			if err := access.RequireActive(user); err != nil {
				return err
			}
			if err := access.RequireRole(user, allowed...); err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(string(user.Role)).Inc()
				return err
			}
			return next(c)
		}
	}
}
