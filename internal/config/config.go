package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fixwise/fixwise/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Firestore  FirestoreConfig  `validate:"required"`
	Billing    BillingConfig    `validate:"required"`
	Stripe     StripeConfig
	Sentry     SentryConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type FirestoreConfig struct {
	ProjectID string `mapstructure:"project_id" validate:"required"`
}

// BillingConfig holds the business defaults applied when a request does not
// carry explicit values. The calculator itself always takes explicit
// parameters; these defaults are resolved at the API boundary.
type BillingConfig struct {
	Currency          string          `validate:"required,len=3"`
	DefaultVatRate    decimal.Decimal `mapstructure:"default_vat_rate"`
	VatEnabledDefault bool            `mapstructure:"vat_enabled_default"`
	// PaymentBaseURL is the public base used for fallback payment links
	// when no gateway is configured, e.g. https://pay.fixwise.app
	PaymentBaseURL string `mapstructure:"payment_base_url" validate:"required,url"`
}

// StripeConfig configures the real payment link issuer. When APIKey is empty
// the service falls back to demo payment links and stays fully functional.
type StripeConfig struct {
	APIKey     string `mapstructure:"api_key"`
	SuccessURL string `mapstructure:"success_url"`
	CancelURL  string `mapstructure:"cancel_url"`
}

// IsConfigured returns true when a usable gateway credential is present
func (c StripeConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fixwise")

	v.SetEnvPrefix("FIXWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decimalDecodeHook())); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("billing.currency", "ILS")
	v.SetDefault("billing.default_vat_rate", "0.17")
	v.SetDefault("billing.vat_enabled_default", true)
	v.SetDefault("billing.payment_base_url", "https://pay.fixwise.app")
	v.SetDefault("sentry.sample_rate", 0.1)
}

func (c Configuration) Validate() error {
	return validator.New().Struct(c)
}
