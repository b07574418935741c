package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kreker0001/TimeJobs/internal/api/metrics"
	"github.com/kreker0001/TimeJobs/internal/core/ports"
)

// VacancyHandler handles the public listing and the employer posting flow.
type VacancyHandler struct {
	jobService ports.JobService
}

func NewVacancyHandler(jobService ports.JobService) *VacancyHandler {
	return &VacancyHandler{jobService: jobService}
}

// List handles GET /vacancies. Only approved postings are returned.
//
// @Summary      List approved vacancies
// @Tags         vacancies
// @Produce      json
// @Param        search  query     string  false  "substring match on title, city, specialization or description"
// @Success      200     {object}  listJobsResponse
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c echo.Context) error {
	jobs, err := h.jobService.ListApproved(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listJobsResponse{Data: toJobResponses(jobs)})
}

// Get handles GET /vacancies/:id. Unpublished postings are visible only to
// the owning employer or a moderator; everyone else gets a generic 404.
//
// @Summary      Get one vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id   path      string  true  "job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  map[string]string
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) Get(c echo.Context) error {
	job, err := h.jobService.Get(c.Request().Context(), ctxViewer(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /vacancies (employer only). The posting starts in
// pending status and goes to moderation.
//
// @Summary      Post a new vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Vacancy details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /vacancies [post]
func (h *VacancyHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Create(c.Request().Context(), ports.CreateJobInput{
		Actor:          actor,
		Title:          req.Title,
		Description:    req.Description,
		City:           req.City,
		Specialization: req.Specialization,
		Wage:           req.Wage,
		PayType:        req.PayType,
		DurationDays:   req.DurationDays,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(string(job.PayType)).Inc()
	return c.JSON(http.StatusCreated, toJobResponse(job))
}
