package job

import (
	"context"

	"github.com/fixwise/fixwise/internal/types"
)

// Repository defines the interface for job persistence operations
type Repository interface {
	// Create creates a new job
	Create(ctx context.Context, job *Job) error

	// Get retrieves a job by ID
	Get(ctx context.Context, id string) (*Job, error)

	// Update updates an existing job
	Update(ctx context.Context, job *Job) error

	// List retrieves jobs based on filter criteria
	List(ctx context.Context, filter *types.JobFilter) ([]*Job, error)

	// Count returns the total count of jobs based on filter criteria
	Count(ctx context.Context, filter *types.JobFilter) (int, error)

	// Delete removes a job permanently. Jobs are hard-deleted; there is no
	// tombstone.
	Delete(ctx context.Context, id string) error
}
