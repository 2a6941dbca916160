package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// AdminHandler handles user administration endpoints.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=CANDIDATE EMPLOYER CONSULTANT ADMIN SUPERADMIN"`
}

type userListResponse struct {
	Data       []*domain.User     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

// ListUsers returns a page of user accounts.
//
// @Summary      List user accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        role    query     string  false  "Filter by role"
// @Param        active  query     bool    false  "Filter by active flag"
// @Param        q       query     string  false  "Email or name substring"
// @Param        page    query     int     false  "Page (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := pageParams(c)

	filter := ports.ListUsersFilter{
		Role:   domain.Role(c.QueryParam("role")),
		Search: c.QueryParam("q"),
		Page:   page,
		Limit:  limit,
	}
	if raw := c.QueryParam("active"); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.Active = &active
		}
	}

	result, err := h.admin.ListUsers(c.Request().Context(), principal(c), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Deactivate disables an account. Tokens already issued stop working on the
// next authenticated request.
//
// @Summary      Deactivate a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id}/deactivate [post]
func (h *AdminHandler) Deactivate(c echo.Context) error {
	if err := h.admin.DeactivateUser(c.Request().Context(), principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "deactivated"})
}

// Reactivate re-enables an account.
//
// @Summary      Reactivate a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  statusResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/users/{id}/reactivate [post]
func (h *AdminHandler) Reactivate(c echo.Context) error {
	if err := h.admin.ReactivateUser(c.Request().Context(), principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "active"})
}

// ChangeRole assigns a new role to an account.
//
// @Summary      Change a user's role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  statusResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/users/{id}/role [post]
func (h *AdminHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.admin.ChangeRole(c.Request().Context(), principal(c), c.Param("id"), domain.Role(req.Role)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, statusResponse{Status: "role updated"})
}
