package service

import (
	"testing"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/domain/handyman"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/testutil"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type JobServiceSuite struct {
	testutil.BaseServiceTestSuite
	service  JobService
	jobRepo  *testutil.InMemoryJobStore
	handyman *handyman.Handyman
}

func TestJobService(t *testing.T) {
	suite.Run(t, new(JobServiceSuite))
}

func (s *JobServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()

	s.jobRepo = s.GetStores().JobRepo.(*testutil.InMemoryJobStore)
	s.service = NewJobService(
		s.jobRepo,
		s.GetStores().HandymanRepo,
		s.GetClock(),
		s.GetLogger(),
	)

	s.handyman = &handyman.Handyman{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_HANDYMAN),
		Name:      "Dana Levi",
		Phone:     "+972-50-555-0102",
		BaseModel: types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.GetStores().HandymanRepo.Create(s.GetContext(), s.handyman))
}

func (s *JobServiceSuite) TestCreateJobSnapshotsHandymanName() {
	resp, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Omer Shalev",
		Title:      "Install two light fixtures",
		HandymanID: &s.handyman.ID,
	})
	s.NoError(err)
	s.Equal(types.JobStatusPending, resp.JobStatus)
	s.NotNil(resp.HandymanName)
	s.Equal("Dana Levi", *resp.HandymanName)
	s.Nil(resp.InvoiceID)
}

func (s *JobServiceSuite) TestCreateJobWithUnknownHandyman() {
	_, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Omer Shalev",
		Title:      "Install two light fixtures",
		HandymanID: lo.ToPtr("hm_missing"),
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *JobServiceSuite) TestCreateJobRequiresClientAndTitle() {
	_, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{Title: "No client"})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{ClientName: "No title"})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *JobServiceSuite) TestUpdateJobStatusMovesFreely() {
	resp, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Maya Katz",
		Title:      "Paint the living room",
	})
	s.NoError(err)

	// forward and backward: the job lifecycle is unguarded
	for _, status := range []types.JobStatus{
		types.JobStatusInProgress,
		types.JobStatusCompleted,
		types.JobStatusPending,
	} {
		updated, err := s.service.UpdateJobStatus(s.GetContext(), resp.ID, status)
		s.NoError(err)
		s.Equal(status, updated.JobStatus)
	}

	_, err = s.service.UpdateJobStatus(s.GetContext(), resp.ID, types.JobStatus("CANCELLED"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *JobServiceSuite) TestUpdateJobReassignsHandyman() {
	resp, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Maya Katz",
		Title:      "Paint the living room",
	})
	s.NoError(err)
	s.Nil(resp.HandymanID)

	updated, err := s.service.UpdateJob(s.GetContext(), resp.ID, dto.UpdateJobRequest{
		HandymanID: &s.handyman.ID,
	})
	s.NoError(err)
	s.Equal("Dana Levi", *updated.HandymanName)

	// clearing the assignment drops the snapshot too
	cleared, err := s.service.UpdateJob(s.GetContext(), resp.ID, dto.UpdateJobRequest{
		HandymanID: lo.ToPtr(""),
	})
	s.NoError(err)
	s.Nil(cleared.HandymanID)
	s.Nil(cleared.HandymanName)
}

func (s *JobServiceSuite) TestListJobsFilters() {
	assigned, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Omer Shalev",
		Title:      "Install two light fixtures",
		HandymanID: &s.handyman.ID,
	})
	s.NoError(err)
	_, err = s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Maya Katz",
		Title:      "Paint the living room",
	})
	s.NoError(err)
	_, err = s.service.UpdateJobStatus(s.GetContext(), assigned.ID, types.JobStatusInProgress)
	s.NoError(err)

	filter := types.NewJobFilter()
	filter.HandymanID = s.handyman.ID
	byHandyman, err := s.service.ListJobs(s.GetContext(), filter)
	s.NoError(err)
	s.Len(byHandyman.Items, 1)
	s.Equal(assigned.ID, byHandyman.Items[0].ID)

	filter = types.NewJobFilter()
	filter.JobStatus = []types.JobStatus{types.JobStatusPending}
	pending, err := s.service.ListJobs(s.GetContext(), filter)
	s.NoError(err)
	s.Len(pending.Items, 1)

	filter = types.NewJobFilter()
	filter.HasInvoice = lo.ToPtr(false)
	uninvoiced, err := s.service.ListJobs(s.GetContext(), filter)
	s.NoError(err)
	s.Len(uninvoiced.Items, 2)
}

func (s *JobServiceSuite) TestDeleteJob() {
	resp, err := s.service.CreateJob(s.GetContext(), dto.CreateJobRequest{
		ClientName: "Maya Katz",
		Title:      "Paint the living room",
	})
	s.NoError(err)

	s.NoError(s.service.DeleteJob(s.GetContext(), resp.ID))

	_, err = s.service.GetJob(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	err = s.service.DeleteJob(s.GetContext(), resp.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}
