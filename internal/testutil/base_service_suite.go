package testutil

import (
	"context"
	"time"

	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/domain/handyman"
	"github.com/fixwise/fixwise/internal/domain/invoice"
	"github.com/fixwise/fixwise/internal/domain/job"
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	"github.com/fixwise/fixwise/internal/domain/settings"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/fixwise/fixwise/internal/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	JobRepo           job.Repository
	InvoiceRepo       invoice.Repository
	HandymanRepo      handyman.Repository
	ServicePresetRepo servicepreset.Repository
	SettingsRepo      settings.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	clock  *TestClock
	issuer *InMemoryPaymentIssuer
	logger *logger.Logger
	config *config.Configuration
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Billing: config.BillingConfig{
			Currency:          "ILS",
			DefaultVatRate:    decimal.RequireFromString("0.17"),
			VatEnabledDefault: true,
			PaymentBaseURL:    "https://pay.test",
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.clock = NewTestClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.issuer = NewInMemoryPaymentIssuer()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = types.SetOperatorID(s.ctx, types.DefaultOperatorID)
	s.ctx = types.SetRequestID(s.ctx, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		JobRepo:           NewInMemoryJobStore(),
		InvoiceRepo:       NewInMemoryInvoiceStore(),
		HandymanRepo:      NewInMemoryHandymanStore(),
		ServicePresetRepo: NewInMemoryServicePresetStore(),
		SettingsRepo:      NewInMemorySettingsStore(),
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.JobRepo.(*InMemoryJobStore).Clear()
	s.stores.InvoiceRepo.(*InMemoryInvoiceStore).Clear()
	s.stores.HandymanRepo.(*InMemoryHandymanStore).Clear()
	s.stores.ServicePresetRepo.(*InMemoryServicePresetStore).Clear()
	s.stores.SettingsRepo.(*InMemorySettingsStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetStores returns the test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetClock returns the controllable test clock
func (s *BaseServiceTestSuite) GetClock() *TestClock {
	return s.clock
}

// GetIssuer returns the in-memory payment issuer
func (s *BaseServiceTestSuite) GetIssuer() *InMemoryPaymentIssuer {
	return s.issuer
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}
