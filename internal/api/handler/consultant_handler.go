package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// ConsultantHandler handles consultant profile endpoints.
type ConsultantHandler struct {
	consultants ports.ConsultantService
}

func NewConsultantHandler(consultants ports.ConsultantService) *ConsultantHandler {
	return &ConsultantHandler{consultants: consultants}
}

type consultantProfileRequest struct {
	Specialty string `json:"specialty" validate:"required,max=200"`
	Region    string `json:"region"    validate:"max=200"`
}

// UpsertProfile creates or updates the caller's own consultant profile.
//
// @Summary      Create or update own consultant profile
// @Tags         consultants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      consultantProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.ConsultantProfile
// @Failure      403   {object}  errorResponse
// @Router       /v1/consultants/me [put]
func (h *ConsultantHandler) UpsertProfile(c echo.Context) error {
	var req consultantProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.consultants.UpsertOwnProfile(c.Request().Context(), principal(c), ports.ConsultantProfileInput{
		Specialty: req.Specialty,
		Region:    req.Region,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// List returns the consultant roster.
//
// @Summary      List consultant profiles
// @Tags         consultants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ConsultantProfile
// @Failure      403  {object}  errorResponse
// @Router       /v1/consultants [get]
func (h *ConsultantHandler) List(c echo.Context) error {
	profiles, err := h.consultants.List(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}
