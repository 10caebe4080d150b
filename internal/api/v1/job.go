package v1

import (
	"net/http"

	"github.com/fixwise/fixwise/internal/api/dto"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/service"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobService     service.JobService
	invoiceService service.InvoiceService
	logger         *logger.Logger
}

func NewJobHandler(jobService service.JobService, invoiceService service.InvoiceService, logger *logger.Logger) *JobHandler {
	return &JobHandler{
		jobService:     jobService,
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// CreateJob godoc
// @Summary Create a new job
// @Description Create a new job with the provided details
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body dto.CreateJobRequest true "Job details"
// @Success 201 {object} dto.JobResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("failed to create job", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJob godoc
// @Summary Get a job by ID
// @Description Get detailed information about a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid job id").Mark(ierr.ErrValidation))
		return
	}

	job, err := h.jobService.GetJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs godoc
// @Summary List jobs
// @Description List jobs with optional filtering
// @Tags Jobs
// @Accept json
// @Produce json
// @Param filter query types.JobFilter false "Filter"
// @Success 200 {object} dto.ListJobsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var filter types.JobFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.Errorw("failed to bind query", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid query parameters").Mark(ierr.ErrValidation))
		return
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}

	jobs, err := h.jobService.ListJobs(c.Request.Context(), &filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob godoc
// @Summary Update a job
// @Description Update job details
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param job body dto.UpdateJobRequest true "Job details"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid job id").Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJobStatus godoc
// @Summary Update job status
// @Description Move a job between scheduling states
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param status body dto.UpdateJobStatusRequest true "Target status"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs/{id}/status [put]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid job id").Mark(ierr.ErrValidation))
		return
	}

	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}
	if err := req.Validate(); err != nil {
		c.Error(err)
		return
	}

	job, err := h.jobService.UpdateJobStatus(c.Request.Context(), id, req.JobStatus)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job
// @Description Permanently delete a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid job id").Mark(ierr.ErrValidation))
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateInvoiceForJob godoc
// @Summary Create an invoice for a job
// @Description Create a draft invoice from the job and the submitted line items
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Failure 409 {object} ierr.ErrorResponse
// @Failure 500 {object} ierr.ErrorResponse
// @Router /jobs/{id}/invoice [post]
func (h *JobHandler) CreateInvoiceForJob(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.Error(ierr.NewError("invalid job id").Mark(ierr.ErrValidation))
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind request", "error", err)
		c.Error(ierr.WithError(err).WithHint("invalid request").Mark(ierr.ErrValidation))
		return
	}

	invoice, err := h.invoiceService.CreateInvoiceForJob(c.Request.Context(), id, req)
	if err != nil {
		h.logger.Errorw("failed to create invoice for job", "error", err, "job_id", id)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, invoice)
}
