package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// CompanyHandler handles company management endpoints.
type CompanyHandler struct {
	companies ports.CompanyService
}

func NewCompanyHandler(companies ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

type companyRequest struct {
	Name        string `json:"name"        validate:"required,max=200"`
	Industry    string `json:"industry"    validate:"max=100"`
	Location    string `json:"location"    validate:"max=200"`
	Website     string `json:"website"     validate:"omitempty,url"`
	Description string `json:"description" validate:"max=4000"`
}

type linkEmployerRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Position string `json:"position" validate:"max=200"`
}

type companyListResponse struct {
	Data       []*domain.Company  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func (r companyRequest) toInput() ports.CompanyInput {
	return ports.CompanyInput{
		Name:        r.Name,
		Industry:    r.Industry,
		Location:    r.Location,
		Website:     r.Website,
		Description: r.Description,
	}
}

// Create registers a new company.
//
// @Summary      Create a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      companyRequest  true  "Company fields"
// @Success      201   {object}  domain.Company
// @Failure      403   {object}  errorResponse
// @Router       /v1/companies [post]
func (h *CompanyHandler) Create(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	company, err := h.companies.Create(c.Request().Context(), principal(c), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, company)
}

// Get returns a company by id. Public.
//
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id  path      string  true  "Company id"
// @Success      200  {object}  domain.Company
// @Failure      404  {object}  errorResponse
// @Router       /v1/companies/{id} [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.companies.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, company)
}

// List returns a page of companies. Public.
//
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page   query     int  false  "Page (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200  {object}  companyListResponse
// @Router       /v1/companies [get]
func (h *CompanyHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.companies.List(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, companyListResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Update edits a company the caller manages.
//
// @Summary      Update a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Company id"
// @Param        body  body      companyRequest  true  "Company fields"
// @Success      200   {object}  domain.Company
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/companies/{id} [put]
func (h *CompanyHandler) Update(c echo.Context) error {
	var req companyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	company, err := h.companies.Update(c.Request().Context(), principal(c), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, company)
}

// LinkEmployer attaches an EMPLOYER user to a company.
//
// @Summary      Link an employer to a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Company id"
// @Param        body  body      linkEmployerRequest  true  "Employer link"
// @Success      201   {object}  domain.EmployerProfile
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/companies/{id}/employers [post]
func (h *CompanyHandler) LinkEmployer(c echo.Context) error {
	var req linkEmployerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	link, err := h.companies.LinkEmployer(c.Request().Context(), principal(c), c.Param("id"), req.UserID, req.Position)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, link)
}
