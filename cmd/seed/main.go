package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fixwise/fixwise/internal/api/dto"
	"github.com/fixwise/fixwise/internal/clock"
	"github.com/fixwise/fixwise/internal/config"
	"github.com/fixwise/fixwise/internal/domain/servicepreset"
	"github.com/fixwise/fixwise/internal/logger"
	"github.com/fixwise/fixwise/internal/payment"
	"github.com/fixwise/fixwise/internal/repository"
	"github.com/fixwise/fixwise/internal/sentry"
	"github.com/fixwise/fixwise/internal/service"
	"github.com/fixwise/fixwise/internal/store/firestore"
	"github.com/fixwise/fixwise/internal/types"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fixwise-seed",
	Short: "Seed the FixWise datastore with demo data",
	Long: `Seeds the service preset catalog, a handyman roster, business
settings and a handful of demo jobs and invoices. Safe to run against an
empty project; existing documents with the same ids are overwritten.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logg, err := logger.NewLogger(cfg)
	if err != nil {
		return err
	}

	client, err := firestore.NewClient(cfg, logg)
	if err != nil {
		return err
	}
	defer client.Close()

	clk := clock.New()
	monitor := sentry.NewSentryService(cfg, logg)
	jobRepo := repository.NewJobRepository(client, monitor, logg)
	invoiceRepo := repository.NewInvoiceRepository(client, monitor, logg)
	handymanRepo := repository.NewHandymanRepository(client, monitor, logg)
	presetRepo := repository.NewServicePresetRepository(client, monitor, logg)
	settingsRepo := repository.NewSettingsRepository(client, monitor, logg)

	settingsService := service.NewSettingsService(settingsRepo, cfg, clk, logg)
	handymanService := service.NewHandymanService(handymanRepo, clk, logg)
	jobService := service.NewJobService(jobRepo, handymanRepo, clk, logg)
	invoiceService := service.NewInvoiceService(
		invoiceRepo, jobRepo, settingsService, payment.NewLinkIssuer(cfg, logg), clk, logg)

	ctx = types.SetOperatorID(ctx, "seeder")

	// business settings
	if _, err := settingsService.UpdateSettings(ctx, dto.UpdateSettingsRequest{
		BusinessName:    lo.ToPtr("FixWise Demo Services"),
		DefaultCurrency: lo.ToPtr(cfg.Billing.Currency),
	}); err != nil {
		return err
	}
	logg.Infow("seeded settings")

	// service preset catalog
	presets := []struct {
		name, description, category string
		price                       string
	}{
		{"Leaky faucet repair", "Replace washer or cartridge in a dripping faucet", "Plumbing", "250"},
		{"Toilet installation", "Remove old toilet and install a new one", "Plumbing", "600"},
		{"Light fixture replacement", "Swap a ceiling or wall light fixture", "Electrical", "200"},
		{"Socket installation", "Add a new wall socket including wiring", "Electrical", "350"},
		{"Door alignment", "Re-hang and align a sagging interior door", "Carpentry", "180"},
		{"Room painting", "Paint a standard room, two coats, paint included", "Painting", "1200"},
		{"AC filter service", "Clean filters and check refrigerant level", "HVAC", "300"},
	}
	for _, p := range presets {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			return err
		}
		preset := &servicepreset.ServicePreset{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SERVICE_PRESET),
			Name:        p.name,
			Description: p.description,
			Price:       price,
			Category:    p.category,
			BaseModel:   types.GetDefaultBaseModel(ctx),
		}
		if err := presetRepo.Create(ctx, preset); err != nil {
			return err
		}
	}
	logg.Infow("seeded service presets", "count", len(presets))

	// handyman roster
	handymen := []dto.CreateHandymanRequest{
		{Name: "Avi Cohen", Phone: "+972-50-555-0101", Email: "avi@fixwise.app"},
		{Name: "Dana Levi", Phone: "+972-50-555-0102", Email: "dana@fixwise.app"},
		{Name: "Yossi Mizrahi", Phone: "+972-50-555-0103"},
	}
	handymanIDs := make([]string, 0, len(handymen))
	for _, req := range handymen {
		h, err := handymanService.CreateHandyman(ctx, req)
		if err != nil {
			return err
		}
		handymanIDs = append(handymanIDs, h.ID)
	}
	logg.Infow("seeded handymen", "count", len(handymanIDs))

	// demo jobs, one of them invoiced
	scheduled := time.Now().UTC().Add(48 * time.Hour)
	jobs := []dto.CreateJobRequest{
		{
			ClientName:  "Noa Friedman",
			ClientPhone: "+972-52-555-0201",
			Title:       "Kitchen faucet dripping",
			Description: "Faucet drips constantly, probably needs a new cartridge",
			ScheduledAt: &scheduled,
			Location:    "12 Herzl St, Tel Aviv",
			HandymanID:  &handymanIDs[0],
		},
		{
			ClientName: "Omer Shalev",
			Title:      "Install two light fixtures",
			Location:   "5 Ben Gurion Blvd, Ramat Gan",
			HandymanID: &handymanIDs[1],
		},
		{
			ClientName: "Maya Katz",
			Title:      "Paint the living room",
		},
	}
	jobIDs := make([]string, 0, len(jobs))
	for _, req := range jobs {
		j, err := jobService.CreateJob(ctx, req)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, j.ID)
	}
	logg.Infow("seeded jobs", "count", len(jobIDs))

	if _, err := jobService.UpdateJobStatus(ctx, jobIDs[0], types.JobStatusCompleted); err != nil {
		return err
	}
	inv, err := invoiceService.CreateInvoiceForJob(ctx, jobIDs[0], dto.CreateInvoiceRequest{
		LineItems: []dto.CreateLineItemRequest{
			{Description: "Leaky faucet repair", Quantity: 1, UnitPrice: decimal.NewFromInt(250)},
			{Description: "Replacement cartridge", Quantity: 1, UnitPrice: decimal.NewFromInt(80)},
		},
	})
	if err != nil {
		return err
	}
	logg.Infow("seeded invoice", "invoice_id", inv.ID, "total", inv.Total)

	logg.Infow("seeding complete")
	return nil
}
