package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// MatchHandler handles the AI-assisted CV/job matching endpoints.
type MatchHandler struct {
	matches ports.MatchService
}

func NewMatchHandler(matches ports.MatchService) *MatchHandler {
	return &MatchHandler{matches: matches}
}

// Evaluate runs (or returns the cached) LLM assessment of a candidate
// against a job posting.
//
// @Summary      Evaluate candidate/job fit
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string  true  "Job id"
// @Param        candidateID  path      string  true  "Candidate profile id"
// @Success      200  {object}  domain.MatchAssessment
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/jobs/{id}/match/{candidateID} [post]
func (h *MatchHandler) Evaluate(c echo.Context) error {
	assessment, err := h.matches.Evaluate(c.Request().Context(), principal(c), c.Param("id"), c.Param("candidateID"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, assessment)
}

// ListForCandidate returns stored assessments for one candidate.
//
// @Summary      List assessments for a candidate
// @Tags         matches
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Candidate profile id"
// @Success      200  {array}   domain.MatchAssessment
// @Failure      403  {object}  errorResponse
// @Router       /v1/candidates/{id}/matches [get]
func (h *MatchHandler) ListForCandidate(c echo.Context) error {
	items, err := h.matches.ListForCandidate(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
