package types

import (
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/samber/lo"
)

// JobStatus represents the operational state of a job.
// The UI suggests the path PENDING -> IN_PROGRESS -> COMPLETED but the data
// layer does not enforce monotonicity: any valid status may be written.
type JobStatus string

const (
	JobStatusPending    JobStatus = "PENDING"
	JobStatusInProgress JobStatus = "IN_PROGRESS"
	JobStatusCompleted  JobStatus = "COMPLETED"
)

func (s JobStatus) String() string {
	return string(s)
}

func (s JobStatus) Validate() error {
	allowed := []JobStatus{
		JobStatusPending,
		JobStatusInProgress,
		JobStatusCompleted,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid job status").
			WithHint("Please provide a valid job status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// JobFilter represents the filter options for listing jobs
type JobFilter struct {
	*QueryFilter

	// job_status filters jobs by their current operational state
	JobStatus []JobStatus `json:"job_status,omitempty" form:"job_status"`

	// handyman_id filters jobs assigned to a specific handyman
	HandymanID string `json:"handyman_id,omitempty" form:"handyman_id"`

	// has_invoice filters jobs by whether an invoice has been created for them
	HasInvoice *bool `json:"has_invoice,omitempty" form:"has_invoice"`
}

// NewJobFilter creates a new job filter with default options
func NewJobFilter() *JobFilter {
	return &JobFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *JobFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.JobStatus {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetLimit implements BaseFilter interface
func (f *JobFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements BaseFilter interface
func (f *JobFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

// IsUnlimited implements BaseFilter interface
func (f *JobFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
