package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/vexr-systems/fieldserve/internal/api"
	"github.com/vexr-systems/fieldserve/internal/asset"
	"github.com/vexr-systems/fieldserve/internal/config"
	"github.com/vexr-systems/fieldserve/internal/export"
	"github.com/vexr-systems/fieldserve/internal/report"
	"github.com/vexr-systems/fieldserve/internal/session"
	"github.com/vexr-systems/fieldserve/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath    = flag.String("config", "configs/config.yaml", "path to configuration file")
		mode          = flag.String("mode", "submit", "submit or export")
		draftPath     = flag.String("draft", "", "path to draft JSON file (submit mode)")
		reportImage   = flag.String("report-image", "", "path to the service report photo (submit mode)")
		deliveryImage = flag.String("delivery-image", "", "path to the delivery note photo (submit mode)")
		username      = flag.String("username", os.Getenv("FIELDSERVE_USERNAME"), "dashboard username")
		password      = flag.String("password", os.Getenv("FIELDSERVE_PASSWORD"), "dashboard password")
		outPath       = flag.String("out", "", "output workbook path (export mode)")
	)
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(logging.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *username == "" || *password == "" {
		logger.Fatal("Username and password are required (flags or FIELDSERVE_USERNAME/FIELDSERVE_PASSWORD)")
	}

	ctx := context.Background()

	// Wire backend clients
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, logger)
	users := api.NewUsersService(client, logger)
	customers := api.NewCustomersService(client, logger)
	spares := api.NewSparesService(client, logger)
	reports := api.NewReportsService(client, logger)

	sess, err := users.Login(ctx, api.Credentials{Username: *username, Password: *password})
	if err != nil {
		logger.Fatal("Login failed", zap.Error(err))
	}

	switch *mode {
	case "submit":
		if *draftPath == "" || *reportImage == "" || *deliveryImage == "" {
			logger.Fatal("submit mode requires -draft, -report-image and -delivery-image")
		}
		err = runSubmit(ctx, cfg, sess, customers, spares, reports, *draftPath, *reportImage, *deliveryImage, logger)
	case "export":
		if !sess.CanViewReports() {
			logger.Fatal("Role is not permitted to view service reports",
				zap.String("role", sess.Role.String()))
		}
		err = runExport(ctx, cfg, reports, *outPath, logger)
	default:
		logger.Fatal("Unknown mode", zap.String("mode", *mode))
	}
	if err != nil {
		os.Exit(1)
	}
}

func runSubmit(
	ctx context.Context,
	cfg *config.Config,
	sess *session.Session,
	customers *api.CustomersService,
	spares *api.SparesService,
	reports *api.ReportsService,
	draftPath, reportImage, deliveryImage string,
	logger *zap.Logger,
) error {
	draft, err := loadDraft(draftPath)
	if err != nil {
		logger.Error("Failed to load draft", zap.Error(err))
		return err
	}

	if draft.ServiceReportPicture, err = asset.LoadFile(reportImage); err != nil {
		logger.Error("Failed to load service report image", zap.Error(err))
		return err
	}
	if draft.DeliveryNotePicture, err = asset.LoadFile(deliveryImage); err != nil {
		logger.Error("Failed to load delivery note image", zap.Error(err))
		return err
	}

	catalog, err := report.LoadCatalog(ctx, customers, spares, logger)
	if err != nil {
		logger.Error("Failed to load lookup catalog", zap.Error(err))
		return err
	}
	if draft.Customer != "" && !catalog.HasCustomer(draft.Customer) {
		logger.Warn("Draft references an unknown customer id",
			zap.String("customer", draft.Customer))
	}
	for _, id := range draft.Spare {
		if !catalog.HasSpare(id) {
			logger.Warn("Draft references an unknown spare id", zap.String("spare", id))
		}
	}

	uploader := asset.NewUploader(cfg.Asset.UploadURL, cfg.Asset.CloudName, cfg.Asset.Timeout, logger)
	submitter := report.NewSubmitter(uploader, reports, sess, report.UploadProfiles{
		Report:   cfg.Asset.ReportPreset,
		Delivery: cfg.Asset.DeliveryPreset,
	}, logger)

	if err := submitter.Submit(ctx, draft); err != nil {
		var vErr *report.ValidationError
		if errors.As(err, &vErr) {
			fmt.Fprintln(os.Stderr, "Draft failed validation:")
			printFieldErrors(vErr.Fields)
			return err
		}
		fmt.Fprintf(os.Stderr, "Submission failed: %v\n", err)
		return err
	}

	fmt.Println("Service report created successfully!")
	return nil
}

func runExport(ctx context.Context, cfg *config.Config, reports *api.ReportsService, outPath string, logger *zap.Logger) error {
	all, err := reports.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch reports", zap.Error(err))
		return err
	}

	if outPath == "" {
		outPath = filepath.Join(cfg.Export.OutputDir, fmt.Sprintf("service_reports_%s.xlsx", time.Now().Format("2006-01-02")))
	}
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("Failed to create output directory", zap.Error(err))
			return err
		}
	}

	exporter := export.NewExporter(logger)
	if err := exporter.WriteReports(all, outPath); err != nil {
		logger.Error("Export failed", zap.Error(err))
		return err
	}

	fmt.Printf("Exported %d report(s) to %s\n", len(all), outPath)
	return nil
}

func loadDraft(path string) (*report.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}
	var draft report.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to parse draft file: %w", err)
	}
	return &draft, nil
}

func printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, errs[field])
	}
}
