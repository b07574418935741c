package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kreker0001/TimeJobs/internal/api/metrics"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// ManageHandler serves the management surface shared by employers and
// moderators.
type ManageHandler struct {
	jobService ports.JobService
}

func NewManageHandler(jobService ports.JobService) *ManageHandler {
	return &ManageHandler{jobService: jobService}
}

// List handles GET /manage: an employer sees their own postings with
// application counts, a moderator sees the pending queue.
//
// @Summary      Management view
// @Tags         manage
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  manageResponse
// @Failure      403  {object}  map[string]string
// @Router       /manage [get]
func (h *ManageHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	managed, err := h.jobService.Manage(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	items := make([]managedJobResponse, 0, len(managed))
	for _, m := range managed {
		items = append(items, managedJobResponse{
			jobResponse:  toJobResponse(m.Job),
			Applications: m.Applications,
		})
	}
	return c.JSON(http.StatusOK, manageResponse{Data: items})
}

// ChangeStatus handles POST /manage/jobs/:id/status/:action, where action is
// approve or reject (moderator) or close (owning employer).
//
// @Summary      Change a vacancy's status
// @Tags         manage
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "job id"
// @Param        action  path      string  true  "approve | reject | close"
// @Success      200     {object}  jobResponse
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /manage/jobs/{id}/status/{action} [post]
func (h *ManageHandler) ChangeStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.ChangeStatus(c.Request().Context(), actor, c.Param("id"), c.Param("action"))
	if err != nil {
		return err
	}

	metrics.JobStatusTransitionsTotal.WithLabelValues(c.Param("action")).Inc()
	return c.JSON(http.StatusOK, toJobResponse(job))
}
