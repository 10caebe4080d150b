package invoice

import (
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/shopspring/decimal"
)

// LineItem is one billable entry on an invoice. Line items are composed in
// the editor and persisted together with their invoice; they are not added
// or removed independently afterwards.
type LineItem struct {
	ID          string          `firestore:"id" json:"id"`
	InvoiceID   string          `firestore:"invoice_id" json:"invoice_id"`
	Description string          `firestore:"description" json:"description"`
	Quantity    int64           `firestore:"quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `firestore:"unit_price" json:"unit_price"`
	// Amount is derived: quantity x unit price
	Amount decimal.Decimal `firestore:"amount" json:"amount"`
}

func (li *LineItem) Validate() error {
	if li.Description == "" {
		return ierr.NewError("line item description is required").
			WithHint("Every line item needs a description").
			Mark(ierr.ErrValidation)
	}
	if li.Quantity < 1 {
		return ierr.NewError("line item quantity must be at least 1").
			WithHint("Quantity must be a positive whole number").
			WithReportableDetails(map[string]any{
				"description": li.Description,
				"quantity":    li.Quantity,
			}).
			Mark(ierr.ErrValidation)
	}
	if li.UnitPrice.IsNegative() {
		return ierr.NewError("line item unit price must be non-negative").
			WithHint("Unit price cannot be negative").
			WithReportableDetails(map[string]any{
				"description": li.Description,
				"unit_price":  li.UnitPrice,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
