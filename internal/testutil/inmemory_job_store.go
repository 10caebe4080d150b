package testutil

import (
	"context"

	"github.com/fixwise/fixwise/internal/domain/job"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/samber/lo"
)

// InMemoryJobStore implements job.Repository. Set FailNextUpdate to make
// the next Update call fail, simulating a lost write mid-flow.
type InMemoryJobStore struct {
	*InMemoryStore[*job.Job]
	FailNextUpdate bool
}

// NewInMemoryJobStore creates a new in-memory job store
func NewInMemoryJobStore() *InMemoryJobStore {
	return &InMemoryJobStore{
		InMemoryStore: NewInMemoryStore[*job.Job](),
	}
}

func copyJob(j *job.Job) *job.Job {
	if j == nil {
		return nil
	}
	copied := *j
	return &copied
}

func (s *InMemoryJobStore) Create(ctx context.Context, j *job.Job) error {
	if j == nil {
		return ierr.NewError("job cannot be nil").Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, j.ID, copyJob(j))
}

func (s *InMemoryJobStore) Get(ctx context.Context, id string) (*job.Job, error) {
	j, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyJob(j), nil
}

func (s *InMemoryJobStore) Update(ctx context.Context, j *job.Job) error {
	if j == nil {
		return ierr.NewError("job cannot be nil").Mark(ierr.ErrValidation)
	}
	if s.FailNextUpdate {
		s.FailNextUpdate = false
		return ierr.NewError("document store unavailable").
			WithHint("The document store is unavailable, please retry").
			Mark(ierr.ErrDatabase)
	}
	return s.InMemoryStore.Update(ctx, j.ID, copyJob(j))
}

func (s *InMemoryJobStore) List(ctx context.Context, filter *types.JobFilter) ([]*job.Job, error) {
	jobs, err := s.InMemoryStore.List(ctx, filter, jobFilterFn, jobSortFn)
	if err != nil {
		return nil, err
	}
	return lo.Map(jobs, func(j *job.Job, _ int) *job.Job { return copyJob(j) }), nil
}

func (s *InMemoryJobStore) Count(ctx context.Context, filter *types.JobFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, jobFilterFn)
}

func (s *InMemoryJobStore) Delete(ctx context.Context, id string) error {
	return s.InMemoryStore.Delete(ctx, id)
}

func jobFilterFn(_ context.Context, j *job.Job, filter interface{}) bool {
	f, ok := filter.(*types.JobFilter)
	if !ok || f == nil {
		return true
	}
	if len(f.JobStatus) > 0 && !lo.Contains(f.JobStatus, j.JobStatus) {
		return false
	}
	if f.HandymanID != "" && (j.HandymanID == nil || *j.HandymanID != f.HandymanID) {
		return false
	}
	if f.HasInvoice != nil && j.HasInvoice() != *f.HasInvoice {
		return false
	}
	return true
}

func jobSortFn(a, b *job.Job) bool {
	return a.CreatedAt.After(b.CreatedAt)
}
