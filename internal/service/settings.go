package service

import (
	"context"
	"time"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/clock"
	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/domain/settings"
	ierr "github.com/fixwise/fixwise/internal/errors"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const settingsCacheKey = "settings"

// BillingDefaults are the resolved defaults applied to an invoice when the
// request does not carry explicit values.
type BillingDefaults struct {
	Currency   string
	VatEnabled bool
	VatRate    decimal.Decimal
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	GetBillingDefaults(ctx context.Context) (*BillingDefaults, error)
}

type settingsService struct {
	repo   settings.Repository
	config *config.Configuration
	cache  *cache.Cache
	clock  clock.Clock
	logger *logger.Logger
}

func NewSettingsService(
	repo settings.Repository,
	config *config.Configuration,
	clock clock.Clock,
	logger *logger.Logger,
) SettingsService {
	return &settingsService{
		repo:   repo,
		config: config,
		cache:  cache.New(30*time.Second, time.Minute),
		clock:  clock,
		logger: logger,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewSettingsResponse(current), nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		current.BusinessName = *req.BusinessName
	}
	if req.DefaultCurrency != nil {
		current.DefaultCurrency = *req.DefaultCurrency
	}
	if req.DefaultVatRate != nil {
		current.DefaultVatRate = *req.DefaultVatRate
	}
	if req.VatEnabledDefault != nil {
		current.VatEnabledDefault = *req.VatEnabledDefault
	}
	if req.PaymentBaseURL != nil {
		current.PaymentBaseURL = *req.PaymentBaseURL
	}
	current.UpdatedAt = s.clock.Now()
	current.UpdatedBy = types.GetOperatorID(ctx)

	if err := s.repo.Update(ctx, current); err != nil {
		return nil, err
	}
	s.cache.Delete(settingsCacheKey)

	return dto.NewSettingsResponse(current), nil
}

func (s *settingsService) GetBillingDefaults(ctx context.Context) (*BillingDefaults, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return &BillingDefaults{
		Currency:   current.DefaultCurrency,
		VatEnabled: current.VatEnabledDefault,
		VatRate:    current.DefaultVatRate,
	}, nil
}

// load returns the singleton settings document, falling back to the
// configured defaults when it has not been written yet. Results are cached
// for a short TTL since settings are read on every invoice creation.
func (s *settingsService) load(ctx context.Context) (*settings.Settings, error) {
	if cached, found := s.cache.Get(settingsCacheKey); found {
		return cached.(*settings.Settings), nil
	}

	current, err := s.repo.Get(ctx)
	if err != nil {
		if !ierr.IsNotFound(err) {
			return nil, err
		}
		current = s.defaultSettings(ctx)
	}

	s.cache.Set(settingsCacheKey, current, cache.DefaultExpiration)
	return current, nil
}

func (s *settingsService) defaultSettings(ctx context.Context) *settings.Settings {
	return &settings.Settings{
		ID:                settings.SettingsDocID,
		DefaultCurrency:   s.config.Billing.Currency,
		DefaultVatRate:    s.config.Billing.DefaultVatRate,
		VatEnabledDefault: s.config.Billing.VatEnabledDefault,
		PaymentBaseURL:    s.config.Billing.PaymentBaseURL,
		BaseModel:         types.GetDefaultBaseModel(ctx),
	}
}
