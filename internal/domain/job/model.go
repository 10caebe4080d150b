package job

import (
	"time"

	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
)

// Job represents a scheduled piece of work for a client. A job owns at most
// one invoice: InvoiceID is set exactly once, when the invoice is created,
// and is never cleared by normal flow.
type Job struct {
	ID          string     `firestore:"id" json:"id"`
	ClientName  string     `firestore:"client_name" json:"client_name"`
	ClientPhone string     `firestore:"client_phone,omitempty" json:"client_phone,omitempty"`
	ClientEmail string     `firestore:"client_email,omitempty" json:"client_email,omitempty"`
	Title       string     `firestore:"title" json:"title"`
	Description string     `firestore:"description,omitempty" json:"description,omitempty"`
	ScheduledAt *time.Time `firestore:"scheduled_at,omitempty" json:"scheduled_at,omitempty"`
	Location    string     `firestore:"location,omitempty" json:"location,omitempty"`

	JobStatus types.JobStatus `firestore:"job_status" json:"job_status"`

	// HandymanName is a display snapshot taken when the handyman was
	// assigned; it is not refreshed on later handyman edits.
	HandymanID   *string `firestore:"handyman_id,omitempty" json:"handyman_id,omitempty"`
	HandymanName *string `firestore:"handyman_name,omitempty" json:"handyman_name,omitempty"`

	InvoiceID *string `firestore:"invoice_id,omitempty" json:"invoice_id,omitempty"`

	types.BaseModel
}

func (j *Job) Validate() error {
	if j.ClientName == "" {
		return ierr.NewError("client name is required").
			WithHint("Please provide a client name").
			Mark(ierr.ErrValidation)
	}
	if j.Title == "" {
		return ierr.NewError("job title is required").
			WithHint("Please provide a job title").
			Mark(ierr.ErrValidation)
	}
	if err := j.JobStatus.Validate(); err != nil {
		return err
	}
	return nil
}

// HasInvoice reports whether an invoice has already been linked to this job
func (j *Job) HasInvoice() bool {
	return j.InvoiceID != nil && *j.InvoiceID != ""
}
