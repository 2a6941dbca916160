package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/api/middleware"
	"github.com/talentbridge/recruitment-crm/internal/core/domain"
)

// principal returns the authenticated user injected by the Auth middleware,
// or nil on routes mounted with OptionalAuth and no token.
func principal(c echo.Context) *domain.User {
	return middleware.Principal(c)
}

// pageParams reads ?page= and ?limit= query parameters. Zero values are
// returned for absent or malformed input; the service applies its defaults
// and caps.
func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}
