package billing

import (
	"github.com/shopspring/decimal"
)

// LineItemInput is one billable entry as submitted by the invoice editor.
// Inputs are assumed pre-validated (quantity >= 1, unit price >= 0);
// validation happens at the API boundary before totals are computed.
type LineItemInput struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Amount returns quantity x unit price at full precision
func (i LineItemInput) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// TotalsResult carries the derived monetary fields of an invoice
type TotalsResult struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	VatAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
}

// ComputeTotals aggregates line items into subtotal, VAT and total.
// The subtotal is summed at full precision with no mid-sum rounding. VAT is
// rounded half-up to 2 decimals at the point it is computed; when disabled
// it is zero. An empty item list yields all zeros.
func ComputeTotals(items []LineItemInput, vatEnabled bool, vatRate decimal.Decimal) TotalsResult {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount())
	}

	vatAmount := decimal.Zero
	if vatEnabled {
		vatAmount = subtotal.Mul(vatRate).Round(2)
	}

	return TotalsResult{
		Subtotal:  subtotal,
		VatAmount: vatAmount,
		Total:     subtotal.Add(vatAmount),
	}
}
