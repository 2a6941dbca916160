package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/recruitment-crm/internal/core/ports"
)

// AnalyticsHandler handles the admin aggregate views.
type AnalyticsHandler struct {
	analytics ports.AnalyticsService
}

func NewAnalyticsHandler(analytics ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview returns platform-wide counts and a 30-day application series.
//
// @Summary      Platform overview stats
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.OverviewStats
// @Failure      403  {object}  errorResponse
// @Router       /v1/analytics/overview [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	stats, err := h.analytics.Overview(c.Request().Context(), principal(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// JobFunnel returns per-status application counts for one job.
//
// @Summary      Application funnel for a job
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Job id"
// @Success      200  {object}  ports.FunnelStats
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/analytics/jobs/{id}/funnel [get]
func (h *AnalyticsHandler) JobFunnel(c echo.Context) error {
	stats, err := h.analytics.JobFunnel(c.Request().Context(), principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
