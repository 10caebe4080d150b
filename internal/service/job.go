package service

import (
	"context"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/clock"
	"github.com/fixwise/fixwise/internal/domain/handyman"
	"github.com/fixwise/fixwise/internal/domain/job"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
)

type JobService interface {
	CreateJob(ctx context.Context, req dto.CreateJobRequest) (*dto.JobResponse, error)
	GetJob(ctx context.Context, id string) (*dto.JobResponse, error)
	ListJobs(ctx context.Context, filter *types.JobFilter) (*dto.ListJobsResponse, error)
	UpdateJob(ctx context.Context, id string, req dto.UpdateJobRequest) (*dto.JobResponse, error)
	UpdateJobStatus(ctx context.Context, id string, status types.JobStatus) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, id string) error
}

type jobService struct {
	jobRepo      job.Repository
	handymanRepo handyman.Repository
	clock        clock.Clock
	logger       *logger.Logger
}

func NewJobService(
	jobRepo job.Repository,
	handymanRepo handyman.Repository,
	clock clock.Clock,
	logger *logger.Logger,
) JobService {
	return &jobService{
		jobRepo:      jobRepo,
		handymanRepo: handymanRepo,
		clock:        clock,
		logger:       logger,
	}
}

func (s *jobService) CreateJob(ctx context.Context, req dto.CreateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	j := req.ToJob(ctx)
	if j.HandymanID != nil {
		name, err := s.resolveHandymanName(ctx, *j.HandymanID)
		if err != nil {
			return nil, err
		}
		j.HandymanName = name
	}

	if err := j.Validate(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Create(ctx, j); err != nil {
		return nil, err
	}

	return dto.NewJobResponse(j), nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*dto.JobResponse, error) {
	j, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewJobResponse(j), nil
}

func (s *jobService) ListJobs(ctx context.Context, filter *types.JobFilter) (*dto.ListJobsResponse, error) {
	if filter == nil {
		filter = types.NewJobFilter()
	}
	if filter.QueryFilter == nil {
		filter.QueryFilter = types.NewDefaultQueryFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	count, err := s.jobRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.JobResponse, len(jobs))
	for i, j := range jobs {
		items[i] = dto.NewJobResponse(j)
	}

	resp := types.NewListResponse(items, count, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id string, req dto.UpdateJobRequest) (*dto.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	j, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(j)

	// assignment changed: refresh the display snapshot from the roster
	if req.HandymanID != nil {
		if *req.HandymanID == "" {
			j.HandymanID = nil
			j.HandymanName = nil
		} else {
			name, err := s.resolveHandymanName(ctx, *req.HandymanID)
			if err != nil {
				return nil, err
			}
			j.HandymanID = req.HandymanID
			j.HandymanName = name
		}
	}

	j.UpdatedAt = s.clock.Now()
	j.UpdatedBy = types.GetOperatorID(ctx)

	if err := j.Validate(); err != nil {
		return nil, err
	}
	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	return dto.NewJobResponse(j), nil
}

// UpdateJobStatus moves a job between scheduling states. Unlike the invoice
// lifecycle there is no guard: jobs move freely in both directions.
func (s *jobService) UpdateJobStatus(ctx context.Context, id string, status types.JobStatus) (*dto.JobResponse, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	j, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	j.JobStatus = status
	j.UpdatedAt = s.clock.Now()
	j.UpdatedBy = types.GetOperatorID(ctx)

	if err := s.jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	return dto.NewJobResponse(j), nil
}

// DeleteJob removes a job permanently. The linked invoice, if any, survives
// on its denormalized snapshot; reconcile reports it as a conflict.
func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	j, err := s.jobRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if j.HasInvoice() {
		s.logger.Warnw("deleting a job that has an invoice",
			"job_id", j.ID,
			"invoice_id", *j.InvoiceID)
	}

	return s.jobRepo.Delete(ctx, id)
}

func (s *jobService) resolveHandymanName(ctx context.Context, handymanID string) (*string, error) {
	h, err := s.handymanRepo.Get(ctx, handymanID)
	if err != nil {
		if ierr.IsNotFound(err) {
			return nil, ierr.NewError("handyman not found").
				WithHint("The assigned handyman does not exist").
				WithReportableDetails(map[string]any{
					"handyman_id": handymanID,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, err
	}
	return &h.Name, nil
}
