package service

import (
	"testing"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/testutil"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SettingsServiceSuite struct {
	testutil.BaseServiceTestSuite
	service SettingsService
}

func TestSettingsService(t *testing.T) {
	suite.Run(t, new(SettingsServiceSuite))
}

func (s *SettingsServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewSettingsService(
		s.GetStores().SettingsRepo,
		s.GetConfig(),
		s.GetClock(),
		s.GetLogger(),
	)
}

func (s *SettingsServiceSuite) TestDefaultsWhenUnset() {
	// nothing persisted yet: configuration values apply
	resp, err := s.service.GetSettings(s.GetContext())
	s.NoError(err)
	s.Equal("ILS", resp.DefaultCurrency)
	s.True(resp.DefaultVatRate.Equal(decimal.RequireFromString("0.17")))
	s.True(resp.VatEnabledDefault)
}

func (s *SettingsServiceSuite) TestUpdateSettings() {
	resp, err := s.service.UpdateSettings(s.GetContext(), dto.UpdateSettingsRequest{
		BusinessName:      lo.ToPtr("FixWise Demo Services"),
		DefaultVatRate:    lo.ToPtr(decimal.RequireFromString("0.18")),
		VatEnabledDefault: lo.ToPtr(false),
	})
	s.NoError(err)
	s.Equal("FixWise Demo Services", resp.BusinessName)

	defaults, err := s.service.GetBillingDefaults(s.GetContext())
	s.NoError(err)
	s.True(defaults.VatRate.Equal(decimal.RequireFromString("0.18")))
	s.False(defaults.VatEnabled)
	s.Equal("ILS", defaults.Currency)
}

func (s *SettingsServiceSuite) TestUpdateRejectsNegativeVatRate() {
	_, err := s.service.UpdateSettings(s.GetContext(), dto.UpdateSettingsRequest{
		DefaultVatRate: lo.ToPtr(decimal.RequireFromString("-0.05")),
	})
	s.Error(err)
}
