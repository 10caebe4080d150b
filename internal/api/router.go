package api

import (
	v1 "github.com/fixwise/fixwise/internal/api/v1"
	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/rest/middleware"
	"github.com/fixwise/fixwise/internal/sentry"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health        *v1.HealthHandler
	Job           *v1.JobHandler
	Invoice       *v1.InvoiceHandler
	Handyman      *v1.HandymanHandler
	ServicePreset *v1.ServicePresetHandler
	Settings      *v1.SettingsHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, sentryService *sentry.Service) *gin.Engine {
	router := gin.Default()

	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(sentryService),
	)

	router.GET("/health", handlers.Health.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", handlers.Job.CreateJob)
		jobs.GET("", handlers.Job.ListJobs)
		jobs.GET("/:id", handlers.Job.GetJob)
		jobs.PUT("/:id", handlers.Job.UpdateJob)
		jobs.DELETE("/:id", handlers.Job.DeleteJob)
		jobs.PUT("/:id/status", handlers.Job.UpdateJobStatus)
		jobs.POST("/:id/invoice", handlers.Job.CreateInvoiceForJob)
	}

	invoices := router.Group("/invoices")
	{
		invoices.GET("", handlers.Invoice.ListInvoices)
		invoices.GET("/:id", handlers.Invoice.GetInvoice)
		invoices.PUT("/:id/status", handlers.Invoice.TransitionStatus)
		invoices.POST("/:id/payment-link", handlers.Invoice.IssuePaymentLink)
		invoices.POST("/:id/confirm-payment", handlers.Invoice.ConfirmPayment)
		invoices.POST("/reconcile", handlers.Invoice.ReconcileLinks)
	}

	handymen := router.Group("/handymen")
	{
		handymen.POST("", handlers.Handyman.CreateHandyman)
		handymen.GET("", handlers.Handyman.ListHandymen)
		handymen.GET("/:id", handlers.Handyman.GetHandyman)
		handymen.PUT("/:id", handlers.Handyman.UpdateHandyman)
		handymen.DELETE("/:id", handlers.Handyman.DeleteHandyman)
	}

	presets := router.Group("/service-presets")
	{
		presets.GET("", handlers.ServicePreset.ListServicePresets)
		presets.GET("/:id", handlers.ServicePreset.GetServicePreset)
	}

	settings := router.Group("/settings")
	{
		settings.GET("", handlers.Settings.GetSettings)
		settings.PUT("", handlers.Settings.UpdateSettings)
	}
}
