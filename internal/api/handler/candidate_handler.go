package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/domain"
	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// CandidateHandler handles candidate profile and CV endpoints.
type CandidateHandler struct {
	candidates ports.CandidateService
}

func NewCandidateHandler(candidates ports.CandidateService) *CandidateHandler {
	return &CandidateHandler{candidates: candidates}
}

type candidateProfileRequest struct {
	Headline        string   `json:"headline"         validate:"required,max=200"`
	Summary         string   `json:"summary"          validate:"max=4000"`
	Skills          []string `json:"skills"           validate:"max=50"`
	YearsExperience int      `json:"years_experience" validate:"gte=0"`
	Location        string   `json:"location"         validate:"max=200"`
}

type storeCVRequest struct {
	FileName string `json:"file_name" validate:"required,max=255"`
	Text     string `json:"text"      validate:"required"`
}

type candidateListResponse struct {
	Data       []*domain.CandidateProfile `json:"data"`
	Pagination paginationResponse         `json:"pagination"`
}

// UpsertProfile creates or updates the caller's own profile.
//
// @Summary      Create or update own candidate profile
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      candidateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.CandidateProfile
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/candidates/me [put]
func (h *CandidateHandler) UpsertProfile(c echo.Context) error {
	var req candidateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	profile, err := h.candidates.UpsertOwnProfile(c.Request().Context(), principal(c), ports.CandidateProfileInput{
		Headline:        req.Headline,
		Summary:         req.Summary,
		Skills:          req.Skills,
		YearsExperience: req.YearsExperience,
		Location:        req.Location,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profile)
}

// GetProfile returns a candidate profile the caller may access.
//
// @Summary      Get a candidate profile
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Candidate profile id"
// @Success      200  {object}  domain.CandidateProfile
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/candidates/{id} [get]
func (h *CandidateHandler) GetProfile(c echo.Context) error {
	profile, err := h.candidates.GetProfile(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// Search lists candidate profiles matching the query filters.
//
// @Summary      Search candidate profiles
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        skill           query     string  false  "Required skill"
// @Param        location        query     string  false  "Location substring"
// @Param        min_experience  query     int     false  "Minimum years of experience"
// @Param        page            query     int     false  "Page (1-based)"
// @Param        limit           query     int     false  "Page size"
// @Success      200  {object}  candidateListResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/candidates [get]
func (h *CandidateHandler) Search(c echo.Context) error {
	page, limit := pageParams(c)
	minExp, _ := strconv.Atoi(c.QueryParam("min_experience"))

	result, err := h.candidates.Search(c.Request().Context(), principal(c), ports.CandidateSearchFilter{
		Skill:         c.QueryParam("skill"),
		Location:      c.QueryParam("location"),
		MinExperience: minExp,
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, candidateListResponse{
		Data: result.Items,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// StoreCV stores the caller's CV text and links it to their profile.
//
// @Summary      Upload own CV
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      storeCVRequest  true  "CV content"
// @Success      200   {object}  domain.CVDocument
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/candidates/me/cv [put]
func (h *CandidateHandler) StoreCV(c echo.Context) error {
	var req storeCVRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	doc, err := h.candidates.StoreCV(c.Request().Context(), principal(c), req.FileName, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, doc)
}

// GetCV returns the CV of a candidate the caller may access.
//
// @Summary      Get a candidate CV
// @Tags         candidates
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Candidate profile id"
// @Success      200  {object}  domain.CVDocument
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/candidates/{id}/cv [get]
func (h *CandidateHandler) GetCV(c echo.Context) error {
	doc, err := h.candidates.GetCV(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}
