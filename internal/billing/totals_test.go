package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeTotals(t *testing.T) {
	vatRate := decimal.RequireFromString("0.17")

	testCases := []struct {
		name          string
		items         []LineItemInput
		vatEnabled    bool
		wantSubtotal  string
		wantVatAmount string
		wantTotal     string
	}{
		{
			name: "door_lock_with_vat",
			items: []LineItemInput{
				{Quantity: 1, UnitPrice: decimal.NewFromInt(350)},
				{Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
			},
			vatEnabled:    true,
			wantSubtotal:  "650",
			wantVatAmount: "110.50",
			wantTotal:     "760.50",
		},
		{
			name: "door_lock_without_vat",
			items: []LineItemInput{
				{Quantity: 1, UnitPrice: decimal.NewFromInt(350)},
				{Quantity: 2, UnitPrice: decimal.NewFromInt(150)},
			},
			vatEnabled:    false,
			wantSubtotal:  "650",
			wantVatAmount: "0",
			wantTotal:     "650",
		},
		{
			name:          "empty_items_with_vat",
			items:         nil,
			vatEnabled:    true,
			wantSubtotal:  "0",
			wantVatAmount: "0",
			wantTotal:     "0",
		},
		{
			name: "fractional_prices_round_vat_half_up",
			items: []LineItemInput{
				{Quantity: 3, UnitPrice: decimal.RequireFromString("33.33")},
			},
			vatEnabled: true,
			// 99.99 * 0.17 = 16.9983 -> 17.00
			wantSubtotal:  "99.99",
			wantVatAmount: "17.00",
			wantTotal:     "116.99",
		},
		{
			name: "zero_price_items",
			items: []LineItemInput{
				{Quantity: 5, UnitPrice: decimal.Zero},
			},
			vatEnabled:    true,
			wantSubtotal:  "0",
			wantVatAmount: "0",
			wantTotal:     "0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.vatEnabled, vatRate)

			require.True(t, got.Subtotal.Equal(decimal.RequireFromString(tc.wantSubtotal)),
				"subtotal: got %s want %s", got.Subtotal, tc.wantSubtotal)
			require.True(t, got.VatAmount.Equal(decimal.RequireFromString(tc.wantVatAmount)),
				"vat amount: got %s want %s", got.VatAmount, tc.wantVatAmount)
			require.True(t, got.Total.Equal(decimal.RequireFromString(tc.wantTotal)),
				"total: got %s want %s", got.Total, tc.wantTotal)
		})
	}
}

func TestComputeTotalsSubtotalMatchesItemSum(t *testing.T) {
	items := []LineItemInput{
		{Quantity: 2, UnitPrice: decimal.RequireFromString("19.99")},
		{Quantity: 1, UnitPrice: decimal.RequireFromString("250")},
		{Quantity: 4, UnitPrice: decimal.RequireFromString("12.5")},
	}

	got := ComputeTotals(items, false, decimal.Zero)

	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount())
	}
	require.True(t, got.Subtotal.Equal(sum))
	require.True(t, got.Total.Equal(got.Subtotal.Add(got.VatAmount)))
	require.True(t, got.VatAmount.IsZero())
}
