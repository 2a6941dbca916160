package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// ApplicationHandler handles the application pipeline endpoints.
type ApplicationHandler struct {
	applications ports.ApplicationService
}

func NewApplicationHandler(applications ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type applyRequest struct {
	CoverNote string `json:"cover_note" validate:"max=4000"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_review shortlisted interview offer hired rejected"`
	Note   string `json:"note"   validate:"max=2000"`
}

type applicationListResponse struct {
	Data       []*domain.Application `json:"data"`
	Pagination paginationResponse    `json:"pagination"`
}

// Apply submits an application to an open posting.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Job id"
// @Param        body  body      applyRequest  true  "Application"
// @Success      201   {object}  domain.Application
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id}/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.applications.Apply(c.Request().Context(), principal(c), c.Param("id"), req.CoverNote)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, app)
}

// Get returns a single application with its status history.
//
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Application id"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/applications/{id} [get]
func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.applications.Get(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}

// List returns a page of applications scoped to the caller's role.
//
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        job_id        query     string  false  "Filter by job"
// @Param        candidate_id  query     string  false  "Filter by candidate"
// @Param        company_id    query     string  false  "Filter by company (required for employers)"
// @Param        status        query     string  false  "Filter by pipeline status"
// @Param        page          query     int     false  "Page (1-based)"
// @Param        limit         query     int     false  "Page size"
// @Success      200  {object}  applicationListResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/applications [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.applications.List(c.Request().Context(), principal(c), ports.ListApplicationsFilter{
		JobID:       c.QueryParam("job_id"),
		CandidateID: c.QueryParam("candidate_id"),
		CompanyID:   c.QueryParam("company_id"),
		Status:      domain.ApplicationStatus(c.QueryParam("status")),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, applicationListResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// UpdateStatus moves an application along the pipeline. Withdrawal is not
// accepted here; candidates use the withdraw endpoint.
//
// @Summary      Update application status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Application id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  domain.Application
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/applications/{id}/status [post]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	app, err := h.applications.UpdateStatus(c.Request().Context(), principal(c), c.Param("id"), domain.ApplicationStatus(req.Status), req.Note)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, app)
}

// Withdraw lets a candidate pull their own application.
//
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Application id"
// @Success      200  {object}  domain.Application
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/applications/{id}/withdraw [post]
func (h *ApplicationHandler) Withdraw(c echo.Context) error {
	app, err := h.applications.Withdraw(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, app)
}
