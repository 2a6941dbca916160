package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// JobHandler handles job posting endpoints. Read endpoints are public for
// open postings; everything else requires authentication.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	CompanyID      string   `json:"company_id"      validate:"required"`
	Title          string   `json:"title"           validate:"required,max=200"`
	Description    string   `json:"description"     validate:"max=8000"`
	Location       string   `json:"location"        validate:"max=200"`
	EmploymentType string   `json:"employment_type" validate:"omitempty,oneof=full_time part_time contract internship"`
	SalaryMin      int      `json:"salary_min"      validate:"gte=0"`
	SalaryMax      int      `json:"salary_max"      validate:"gte=0"`
	Skills         []string `json:"skills"          validate:"max=50"`
	Publish        bool     `json:"publish"`
}

type jobListResponse struct {
	Data       []*domain.Job      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (r jobRequest) toInput() ports.JobInput {
	return ports.JobInput{
		CompanyID:      r.CompanyID,
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		EmploymentType: r.EmploymentType,
		SalaryMin:      r.SalaryMin,
		SalaryMax:      r.SalaryMax,
		Skills:         r.Skills,
		Publish:        r.Publish,
	}
}

// Create posts a new job for a company the caller manages.
//
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jobRequest  true  "Job fields"
// @Success      201   {object}  domain.Job
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.jobs.Create(c.Request().Context(), principal(c), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, job)
}

// Get returns a posting. Anonymous callers only see open postings; a draft
// answers 404 unless the caller manages the owning company.
//
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id  path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobs.Get(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// List returns a page of postings matching the filters.
//
// @Summary      List job postings
// @Tags         jobs
// @Produce      json
// @Param        company_id  query     string  false  "Owning company"
// @Param        status      query     string  false  "Comma-separated statuses (privileged roles only)"
// @Param        skill       query     string  false  "Required skill"
// @Param        location    query     string  false  "Location substring"
// @Param        q           query     string  false  "Title substring"
// @Param        page        query     int     false  "Page (1-based)"
// @Param        limit       query     int     false  "Page size"
// @Success      200  {object}  jobListResponse
// @Router       /v1/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	var statuses []domain.JobStatus
	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			statuses = append(statuses, domain.JobStatus(strings.TrimSpace(s)))
		}
	}

	result, err := h.jobs.List(c.Request().Context(), principal(c), ports.ListJobsFilter{
		CompanyID: c.QueryParam("company_id"),
		Statuses:  statuses,
		Skill:     c.QueryParam("skill"),
		Location:  c.QueryParam("location"),
		Search:    c.QueryParam("q"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, jobListResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Update edits a posting; setting publish moves a draft to open.
//
// @Summary      Update a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string      true  "Job id"
// @Param        body  body      jobRequest  true  "Job fields"
// @Success      200   {object}  domain.Job
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/jobs/{id} [put]
func (h *JobHandler) Update(c echo.Context) error {
	var req jobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	job, err := h.jobs.Update(c.Request().Context(), principal(c), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, job)
}

// Close moves an open posting to closed.
//
// @Summary      Close a job posting
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Job id"
// @Success      200  {object}  domain.Job
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/jobs/{id}/close [post]
func (h *JobHandler) Close(c echo.Context) error {
	job, err := h.jobs.Close(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}
