package dto

import (
	"github.com/fixwise/fixwise/internal/domain/settings"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/validator"
	"github.com/shopspring/decimal"
)

type UpdateSettingsRequest struct {
	BusinessName      *string          `json:"business_name" validate:"omitempty,max=200"`
	DefaultCurrency   *string          `json:"default_currency" validate:"omitempty,len=3"`
	DefaultVatRate    *decimal.Decimal `json:"default_vat_rate"`
	VatEnabledDefault *bool            `json:"vat_enabled_default"`
	PaymentBaseURL    *string          `json:"payment_base_url" validate:"omitempty,url"`
}

type SettingsResponse struct {
	*settings.Settings
}

func NewSettingsResponse(s *settings.Settings) *SettingsResponse {
	return &SettingsResponse{Settings: s}
}

func (r *UpdateSettingsRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	if r.DefaultVatRate != nil && r.DefaultVatRate.IsNegative() {
		return ierr.NewError("vat rate must be non-negative").
			WithHint("VAT rate cannot be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}
