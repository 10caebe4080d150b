package settings

import (
	"github.com/fixwise/fixwise/internal/types"
	"github.com/shopspring/decimal"
)

// SettingsDocID is the id of the singleton settings document
const SettingsDocID = "settings"

// Settings holds the business-wide defaults applied when a request does not
// carry explicit values. They are read-mostly and cached with a short TTL;
// the calculator itself never reads them implicitly.
type Settings struct {
	ID                string          `firestore:"id" json:"id"`
	BusinessName      string          `firestore:"business_name" json:"business_name"`
	DefaultCurrency   string          `firestore:"default_currency" json:"default_currency"`
	DefaultVatRate    decimal.Decimal `firestore:"default_vat_rate" json:"default_vat_rate"`
	VatEnabledDefault bool            `firestore:"vat_enabled_default" json:"vat_enabled_default"`
	PaymentBaseURL    string          `firestore:"payment_base_url,omitempty" json:"payment_base_url,omitempty"`

	types.BaseModel
}
