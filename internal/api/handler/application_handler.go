package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kreker0001/TimeJobs/internal/api/metrics"
	"github.com/kreker0001/TimeJobs/internal/core/domain"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// ApplicationHandler handles the worker apply flow and own-applications view.
type ApplicationHandler struct {
	applicationService ports.ApplicationService
}

func NewApplicationHandler(applicationService ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// Apply handles POST /vacancies/:id/apply (worker only).
//
// @Summary      Apply to a vacancy
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true   "job id"
// @Param        body  body      applyRequest  false  "optional note to the employer"
// @Success      201   {object}  applicationResponse
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /vacancies/{id}/apply [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	app, err := h.applicationService.Apply(c.Request().Context(), actor, c.Param("id"), req.Note)
	if err != nil {
		if reason := rejectReason(err); reason != "" {
			metrics.ApplicationsRejectedTotal.WithLabelValues(reason).Inc()
		}
		return err
	}

	metrics.ApplicationsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, applicationResponse{
		ID:        app.ID,
		JobID:     app.JobID,
		Note:      app.Note,
		Status:    string(app.Status),
		CreatedAt: app.CreatedAt,
	})
}

// rejectReason buckets refused apply attempts for the metrics counter.
func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrIncompleteProfile):
		return "incomplete_profile"
	case errors.Is(err, domain.ErrDuplicateApplication):
		return "duplicate"
	default:
		return ""
	}
}

// ListOwn handles GET /my-applications (worker only), newest first.
//
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listApplicationsResponse
// @Failure      403  {object}  map[string]string
// @Router       /my-applications [get]
func (h *ApplicationHandler) ListOwn(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	views, err := h.applicationService.ListOwn(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	items := make([]applicationResponse, 0, len(views))
	for _, v := range views {
		job := toJobResponse(v.Job)
		items = append(items, applicationResponse{
			ID:        v.Application.ID,
			JobID:     v.Application.JobID,
			Note:      v.Application.Note,
			Status:    string(v.Application.Status),
			CreatedAt: v.Application.CreatedAt,
			Job:       &job,
		})
	}
	return c.JSON(http.StatusOK, listApplicationsResponse{Data: items})
}
