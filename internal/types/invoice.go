package types

import (
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/samber/lo"
)

// InvoiceStatus represents the current state of an invoice in its lifecycle
type InvoiceStatus string

const (
	// InvoiceStatusDraft indicates the invoice has been composed but not sent
	InvoiceStatusDraft InvoiceStatus = "DRAFT"
	// InvoiceStatusSent indicates the invoice has been sent to the client,
	// usually together with a payment link
	InvoiceStatusSent InvoiceStatus = "SENT"
	// InvoiceStatusOutstanding indicates payment is overdue
	InvoiceStatusOutstanding InvoiceStatus = "OUTSTANDING"
	// InvoiceStatusPaid indicates the invoice has been settled. Paid is
	// terminal: no transition moves a paid invoice to another status.
	InvoiceStatusPaid InvoiceStatus = "PAID"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	allowed := []InvoiceStatus{
		InvoiceStatusDraft,
		InvoiceStatusSent,
		InvoiceStatusOutstanding,
		InvoiceStatusPaid,
	}
	if !lo.Contains(allowed, s) {
		return ierr.NewError("invalid invoice status").
			WithHint("Please provide a valid invoice status").
			WithReportableDetails(map[string]any{
				"allowed": allowed,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// CanTransitionTo is the single transition guard for the invoice lifecycle.
// The current policy is permissive: any valid target is reachable from any
// non-paid status (marking a draft invoice paid directly is allowed), with
// one exception: a paid invoice never leaves PAID. PAID -> PAID is allowed
// so that repeated payment confirmations stay idempotent.
func (s InvoiceStatus) CanTransitionTo(target InvoiceStatus) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s == InvoiceStatusPaid && target != InvoiceStatusPaid {
		return ierr.NewError("invoice is already paid").
			WithHint("A paid invoice cannot change status").
			WithReportableDetails(map[string]any{
				"status": s,
				"target": target,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	return nil
}

// IsTerminal returns true once the invoice has reached its terminal status
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusPaid
}

// InvoiceFilter represents the filter options for listing invoices
type InvoiceFilter struct {
	*QueryFilter

	// invoice_ids restricts results to invoices with the specified IDs
	InvoiceIDs []string `json:"invoice_ids,omitempty" form:"invoice_ids"`

	// job_id filters invoices created for a specific job
	JobID string `json:"job_id,omitempty" form:"job_id"`

	// invoice_status filters by lifecycle state; multiple statuses may be
	// given to include invoices in any of the listed states
	InvoiceStatus []InvoiceStatus `json:"invoice_status,omitempty" form:"invoice_status"`
}

// NewInvoiceFilter creates a new invoice filter with default options
func NewInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

// NewNoLimitInvoiceFilter creates a new invoice filter without pagination
func NewNoLimitInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{
		QueryFilter: NewNoLimitQueryFilter(),
	}
}

func (f *InvoiceFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.InvoiceStatus {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// GetLimit implements BaseFilter interface
func (f *InvoiceFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

// GetOffset implements BaseFilter interface
func (f *InvoiceFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

// IsUnlimited implements BaseFilter interface
func (f *InvoiceFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
