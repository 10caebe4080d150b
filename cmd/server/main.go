package main

import (
	"context"
	"time"

	"github.com/fixwise/fixwise/internal/api"
	v1 "github.com/fixwise/fixwise/internal/api/v1"
	"github.com/fixwise/fixwise/internal/clock"
	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/payment"
	"github.com/fixwise/fixwise/internal/repository"
	"github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/service"
	"github.com/fixwise/fixwise/internal/store/firestore"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/fixwise/fixwise/internal/validator"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// @title FixWise API
// @version 1.0
// @description Job scheduling, invoicing and payment collection for small handyman businesses
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Clock
			clock.New,

			// Firestore
			firestore.NewClient,

			// Payment link issuer
			payment.NewLinkIssuer,

			// Repositories
			repository.NewJobRepository,
			repository.NewInvoiceRepository,
			repository.NewHandymanRepository,
			repository.NewServicePresetRepository,
			repository.NewSettingsRepository,
		),
	)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewSettingsService,
			service.NewJobService,
			service.NewInvoiceService,
			service.NewHandymanService,
			service.NewServicePresetService,
		),
	)

	// Monitoring
	opts = append(opts, sentry.Module())

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	logger *logger.Logger,
	jobService service.JobService,
	invoiceService service.InvoiceService,
	handymanService service.HandymanService,
	servicePresetService service.ServicePresetService,
	settingsService service.SettingsService,
) api.Handlers {
	return api.Handlers{
		Health:        v1.NewHealthHandler(logger),
		Job:           v1.NewJobHandler(jobService, invoiceService, logger),
		Invoice:       v1.NewInvoiceHandler(invoiceService, logger),
		Handyman:      v1.NewHandymanHandler(handymanService, logger),
		ServicePreset: v1.NewServicePresetHandler(servicePresetService, logger),
		Settings:      v1.NewSettingsHandler(settingsService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, sentryService *sentry.Service) *gin.Engine {
	return api.NewRouter(handlers, cfg, sentryService)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}
