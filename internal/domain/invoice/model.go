package invoice

import (
	"time"

	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/shopspring/decimal"
)

// Invoice represents the invoice domain model. The monetary fields are
// always derived from the line items, never edited independently, and the
// job fields are a denormalized snapshot taken at creation time.
type Invoice struct {
	ID            string `firestore:"id" json:"id"`
	JobID         string `firestore:"job_id" json:"job_id"`
	InvoiceNumber string `firestore:"invoice_number" json:"invoice_number"`

	JobSnapshot JobSnapshot `firestore:"job_snapshot" json:"job_snapshot"`

	LineItems []*LineItem `firestore:"line_items" json:"line_items"`

	Currency   string          `firestore:"currency" json:"currency"`
	Subtotal   decimal.Decimal `firestore:"subtotal" json:"subtotal"`
	VatEnabled bool            `firestore:"vat_enabled" json:"vat_enabled"`
	VatRate    decimal.Decimal `firestore:"vat_rate" json:"vat_rate"`
	VatAmount  decimal.Decimal `firestore:"vat_amount" json:"vat_amount"`
	Total      decimal.Decimal `firestore:"total" json:"total"`

	InvoiceStatus types.InvoiceStatus `firestore:"invoice_status" json:"invoice_status"`

	// Payment link fields may still be updated after the invoice is paid,
	// for bookkeeping; the status itself never leaves PAID.
	PaymentURL       *string `firestore:"payment_url,omitempty" json:"payment_url,omitempty"`
	PaymentSessionID *string `firestore:"payment_session_id,omitempty" json:"payment_session_id,omitempty"`

	// PaidAt is set the first time the invoice transitions into PAID and is
	// never altered afterwards.
	PaidAt *time.Time `firestore:"paid_at,omitempty" json:"paid_at,omitempty"`

	types.BaseModel
}

// JobSnapshot is the copy of job display fields captured when the invoice
// was created. It is intentionally not kept in sync with later job edits.
type JobSnapshot struct {
	ClientName   string     `firestore:"client_name" json:"client_name"`
	ClientPhone  string     `firestore:"client_phone,omitempty" json:"client_phone,omitempty"`
	ClientEmail  string     `firestore:"client_email,omitempty" json:"client_email,omitempty"`
	JobTitle     string     `firestore:"job_title" json:"job_title"`
	ScheduledAt  *time.Time `firestore:"scheduled_at,omitempty" json:"scheduled_at,omitempty"`
	Location     string     `firestore:"location,omitempty" json:"location,omitempty"`
	HandymanName string     `firestore:"handyman_name,omitempty" json:"handyman_name,omitempty"`
}

func (i *Invoice) Validate() error {
	if i.JobID == "" {
		return ierr.NewError("invoice must reference a job").
			WithHint("An invoice can only be created for a job").
			Mark(ierr.ErrValidation)
	}

	if err := i.InvoiceStatus.Validate(); err != nil {
		return err
	}

	if i.Subtotal.IsNegative() || i.VatAmount.IsNegative() || i.Total.IsNegative() {
		return ierr.NewError("invoice amounts must be non-negative").
			Mark(ierr.ErrValidation)
	}

	// paid_at is set if and only if the invoice is paid
	if (i.InvoiceStatus == types.InvoiceStatusPaid) != (i.PaidAt != nil) {
		return ierr.NewError("paid_at must be set exactly when the invoice is paid").
			WithReportableDetails(map[string]any{
				"invoice_status": i.InvoiceStatus,
			}).
			Mark(ierr.ErrValidation)
	}

	for _, item := range i.LineItems {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	return nil
}
