package dto

import (
	"context"
	"time"

	"github.com/fixwise/fixwise/internal/domain/job"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/fixwise/fixwise/internal/validator"
)

type CreateJobRequest struct {
	ClientName  string     `json:"client_name" validate:"required,max=200"`
	ClientPhone string     `json:"client_phone" validate:"omitempty,max=30"`
	ClientEmail string     `json:"client_email" validate:"omitempty,email"`
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Location    string     `json:"location" validate:"omitempty,max=500"`
	HandymanID  *string    `json:"handyman_id"`
}

type UpdateJobRequest struct {
	ClientName  *string    `json:"client_name" validate:"omitempty,max=200"`
	ClientPhone *string    `json:"client_phone" validate:"omitempty,max=30"`
	ClientEmail *string    `json:"client_email" validate:"omitempty,email"`
	Title       *string    `json:"title" validate:"omitempty,max=200"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Location    *string    `json:"location" validate:"omitempty,max=500"`
	HandymanID  *string    `json:"handyman_id"`
}

type UpdateJobStatusRequest struct {
	JobStatus types.JobStatus `json:"job_status" validate:"required"`
}

type JobResponse struct {
	*job.Job
}

// ListJobsResponse represents the response for listing jobs
type ListJobsResponse = types.ListResponse[*JobResponse]

func NewJobResponse(j *job.Job) *JobResponse {
	return &JobResponse{Job: j}
}

func (r *CreateJobRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateJobRequest) ToJob(ctx context.Context) *job.Job {
	return &job.Job{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_JOB),
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Title:       r.Title,
		Description: r.Description,
		ScheduledAt: r.ScheduledAt,
		Location:    r.Location,
		JobStatus:   types.JobStatusPending,
		HandymanID:  r.HandymanID,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

func (r *UpdateJobRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// Apply patches the provided fields onto the job. Handyman assignment is
// handled by the service since it snapshots the handyman name.
func (r *UpdateJobRequest) Apply(j *job.Job) {
	if r.ClientName != nil {
		j.ClientName = *r.ClientName
	}
	if r.ClientPhone != nil {
		j.ClientPhone = *r.ClientPhone
	}
	if r.ClientEmail != nil {
		j.ClientEmail = *r.ClientEmail
	}
	if r.Title != nil {
		j.Title = *r.Title
	}
	if r.Description != nil {
		j.Description = *r.Description
	}
	if r.ScheduledAt != nil {
		j.ScheduledAt = r.ScheduledAt
	}
	if r.Location != nil {
		j.Location = *r.Location
	}
}

func (r *UpdateJobStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.JobStatus.Validate()
}
