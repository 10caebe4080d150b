package dto

import (
	"github.com/fixwise/fixwise/internal/billing"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/fixwise/fixwise/internal/validator"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest creates an invoice for a job. VatEnabled and VatRate
// default to the business settings when omitted; Currency likewise.
type CreateInvoiceRequest struct {
	LineItems  []CreateLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
	VatEnabled *bool                   `json:"vat_enabled"`
	VatRate    *decimal.Decimal        `json:"vat_rate"`
	Currency   string                  `json:"currency" validate:"omitempty,len=3"`
}

type CreateLineItemRequest struct {
	Description string          `json:"description" validate:"required,max=500"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

type TransitionInvoiceStatusRequest struct {
	InvoiceStatus types.InvoiceStatus `json:"invoice_status" validate:"required"`
}

// ConfirmPaymentRequest carries the optional gateway session that triggered
// the confirmation. Confirmations may arrive more than once.
type ConfirmPaymentRequest struct {
	SessionID string `json:"session_id"`
}

type InvoiceResponse struct {
	*invoice.Invoice
}

// ListInvoicesResponse represents the response for listing invoices
type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

// ReconcileResponse reports the outcome of an invoice-link reconciliation run
type ReconcileResponse struct {
	Scanned  int      `json:"scanned"`
	Repaired []string `json:"repaired,omitempty"`
	Conflict []string `json:"conflict,omitempty"`
}

func NewInvoiceResponse(inv *invoice.Invoice) *InvoiceResponse {
	return &InvoiceResponse{Invoice: inv}
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	for _, item := range r.LineItems {
		if item.UnitPrice.IsNegative() {
			return ierr.NewError("line item unit price must be non-negative").
				WithHint("Unit price cannot be negative").
				WithReportableDetails(map[string]any{
					"description": item.Description,
				}).
				Mark(ierr.ErrValidation)
		}
	}
	if r.VatRate != nil && r.VatRate.IsNegative() {
		return ierr.NewError("vat rate must be non-negative").
			WithHint("VAT rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// ToLineItemInputs converts the request items into calculator inputs
func (r *CreateInvoiceRequest) ToLineItemInputs() []billing.LineItemInput {
	inputs := make([]billing.LineItemInput, len(r.LineItems))
	for i, item := range r.LineItems {
		inputs[i] = billing.LineItemInput{
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return inputs
}

func (r *TransitionInvoiceStatusRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.InvoiceStatus.Validate()
}
