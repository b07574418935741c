package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// StatsHandler serves the landing-page marketplace summary.
type StatsHandler struct {
	jobService ports.JobService
}

func NewStatsHandler(jobService ports.JobService) *StatsHandler {
	return &StatsHandler{jobService: jobService}
}

// Index handles GET /: counts plus the latest approved postings.
//
// @Summary      Marketplace summary
// @Tags         stats
// @Produce      json
// @Success      200  {object}  statsResponse
// @Router       / [get]
func (h *StatsHandler) Index(c echo.Context) error {
	stats, err := h.jobService.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statsResponse{
		ActiveJobs: stats.ActiveJobs,
		Workers:    stats.Workers,
		Employers:  stats.Employers,
		LatestJobs: toJobResponses(stats.LatestJobs),
	})
}
