package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hirehive/hirehive-api/internal/core/domain"
	"github.com/hirehive/hirehive-api/internal/core/ports"
)

// JobHandler serves job postings and applications.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Post creates a posting owned by the calling vendor.
//
// @Summary      Post a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postJobRequest  true  "Job posting"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Post(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(err.Error())
	}

	job, err := h.service.PostJob(c.Request().Context(), id, ports.PostJobInput{
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		SalaryMin:      req.SalaryMin,
		SalaryMax:      req.SalaryMax,
		Location:       req.Location,
		ExpiresAt:      req.ExpiresAt,
		IPAddress:      c.RealIP(),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, jobResponse{Message: "Job posting created successfully", Job: *job})
}

// List returns the open postings.
//
// @Summary      List open jobs
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  jobListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobs, err := h.service.ListJobs(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{Message: "Jobs retrieved successfully", Jobs: jobs})
}

// Apply submits the calling job seeker to a job.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyRequest  true  "Target job"
// @Success      201   {object}  applicationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/applications [post]
func (h *JobHandler) Apply(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.NewValidationError(err.Error())
	}

	app, err := h.service.Apply(c.Request().Context(), id, req.JobID, c.RealIP())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, applicationResponse{Message: "Application submitted successfully", Application: *app})
}

// BySeeker lists a job seeker's applications. Guarded by owner-or-admin.
//
// @Summary      Applications of a job seeker
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "Job seeker account ID"
// @Success      200     {object}  seekerApplicationsResponse
// @Failure      400     {object}  errorResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/applications/jobseeker/{userId} [get]
func (h *JobHandler) BySeeker(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	seekerID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil {
		return domain.NewValidationError("invalid userId")
	}

	apps, err := h.service.ApplicationsBySeeker(c.Request().Context(), id, seekerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, seekerApplicationsResponse{Message: "Applications retrieved successfully", Applications: apps})
}

// ByJob lists the applicants of a job to its vendor or an admin.
//
// @Summary      Applicants of a job
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        jobId  path      int  true  "Job ID"
// @Success      200    {object}  jobApplicantsResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /api/applications/job/{jobId} [get]
func (h *JobHandler) ByJob(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		return domain.NewValidationError("invalid jobId")
	}

	apps, err := h.service.ApplicationsForJob(c.Request().Context(), id, jobID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobApplicantsResponse{Message: "Applications retrieved successfully", Applications: apps})
}
