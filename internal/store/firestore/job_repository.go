package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/fixwise/fixwise/internal/domain/job"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	sentryService "github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/samber/lo"
	"google.golang.org/api/iterator"
)

// JobRepository is the Firestore-backed implementation of job.Repository
type JobRepository struct {
	client *firestore.Client
	sentry *sentryService.Service
	logger *logger.Logger
}

func NewJobRepository(client *firestore.Client, sentry *sentryService.Service, logger *logger.Logger) *JobRepository {
	return &JobRepository{
		client: client,
		sentry: sentry,
		logger: logger,
	}
}

func (r *JobRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(jobsCollection)
}

func (r *JobRepository) Create(ctx context.Context, j *job.Job) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "job.create", map[string]interface{}{
		"job_id": j.ID,
	})
	defer sentryService.FinishSpan(span)

	if _, err := r.collection().Doc(j.ID).Create(ctx, j); err != nil {
		return mapStoreError(err, "Unable to create job")
	}
	return nil
}

func (r *JobRepository) Get(ctx context.Context, id string) (*job.Job, error) {
	if id == "" {
		return nil, ierr.NewError("job id is required").
			WithHint("Please provide a job id").
			Mark(ierr.ErrValidation)
	}

	span, ctx := r.sentry.StartStoreSpan(ctx, "job.get", map[string]interface{}{
		"job_id": id,
	})
	defer sentryService.FinishSpan(span)

	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		return nil, mapStoreError(err, "Job not found")
	}

	var j job.Job
	if err := snap.DataTo(&j); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Stored job document is malformed").
			Mark(ierr.ErrDatabase)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j *job.Job) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "job.update", map[string]interface{}{
		"job_id": j.ID,
	})
	defer sentryService.FinishSpan(span)

	// full-document write, last-write-wins per the store's concurrency model
	if _, err := r.collection().Doc(j.ID).Set(ctx, j); err != nil {
		return mapStoreError(err, "Unable to update job")
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	span, ctx := r.sentry.StartStoreSpan(ctx, "job.delete", map[string]interface{}{
		"job_id": id,
	})
	defer sentryService.FinishSpan(span)

	// existence check first so deleting a missing job surfaces NotFound;
	// Firestore deletes are otherwise no-ops for absent documents
	if _, err := r.Get(ctx, id); err != nil {
		return err
	}
	if _, err := r.collection().Doc(id).Delete(ctx); err != nil {
		return mapStoreError(err, "Unable to delete job")
	}
	return nil
}

func (r *JobRepository) List(ctx context.Context, filter *types.JobFilter) ([]*job.Job, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "job.list", nil)
	defer sentryService.FinishSpan(span)

	jobs, err := r.queryAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter != nil && !filter.IsUnlimited() {
		jobs = paginate(jobs, filter.GetOffset(), filter.GetLimit())
	}
	return jobs, nil
}

func (r *JobRepository) Count(ctx context.Context, filter *types.JobFilter) (int, error) {
	span, ctx := r.sentry.StartStoreSpan(ctx, "job.count", nil)
	defer sentryService.FinishSpan(span)

	jobs, err := r.queryAll(ctx, filter)
	if err != nil {
		return 0, err
	}
	return len(jobs), nil
}

// queryAll pushes what Firestore can filter server-side and applies the rest
// in memory. The dataset is a single small business's jobs, so post-filtering
// the handful of remaining conditions is fine.
func (r *JobRepository) queryAll(ctx context.Context, filter *types.JobFilter) ([]*job.Job, error) {
	q := r.collection().Query

	if filter != nil {
		if filter.HandymanID != "" {
			q = q.Where("handyman_id", "==", filter.HandymanID)
		}
		if len(filter.JobStatus) == 1 {
			q = q.Where("job_status", "==", string(filter.JobStatus[0]))
		}
		q = q.OrderBy(filter.GetSort(), direction(filter.GetOrder()))
	} else {
		q = q.OrderBy("created_at", firestore.Desc)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var jobs []*job.Job
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, mapStoreError(err, "Unable to list jobs")
		}

		var j job.Job
		if err := snap.DataTo(&j); err != nil {
			return nil, ierr.WithError(err).
				WithHint("Stored job document is malformed").
				Mark(ierr.ErrDatabase)
		}

		if filter != nil && !matchJob(&j, filter) {
			continue
		}
		jobs = append(jobs, &j)
	}
	return jobs, nil
}

func matchJob(j *job.Job, filter *types.JobFilter) bool {
	if len(filter.JobStatus) > 1 && !lo.Contains(filter.JobStatus, j.JobStatus) {
		return false
	}
	if filter.HasInvoice != nil && j.HasInvoice() != *filter.HasInvoice {
		return false
	}
	return true
}
