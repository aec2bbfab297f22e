package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"

	"github.com/google/uuid"
	"github.com/username/shipsync/src/config"
	"github.com/username/shipsync/src/logger"
	"github.com/username/shipsync/src/parsers"
	"github.com/username/shipsync/src/services"
)

func main() {
	config.LoadConfig()
	if err := config.Cfg.Validate(); err != nil {
		// Configuration problems abort before any I/O.
		stdlog.Fatalf("FATAL: %v", err)
	}
	logger.InitLogger(config.Cfg.LogLevel)

	if err := run(context.Background(), config.Cfg); err != nil {
		logger.L.Error("Reconciliation run failed", "error", err)
		os.Exit(1)
	}
}

// run executes one sequential reconciliation batch: locate today's dispatch
// CSV, match its records against open sales orders, push status updates, and
// email the outcome report.
func run(ctx context.Context, cfg *config.AppConfig) error {
	runID := uuid.NewString()
	log := logger.L.With("runID", runID)
	log.Info("Shipment reconciliation run starting")

	csvPath := cfg.LocalCSVPath
	if csvPath == "" {
		mailService := services.NewMailService(cfg)
		path, err := mailService.FetchLatestCSVAttachment(ctx)
		if err != nil {
			return fmt.Errorf("fetching dispatch CSV from mailbox: %w", err)
		}
		csvPath = path
	}
	if csvPath == "" {
		log.Info("No dispatch CSV available; nothing to reconcile")
		return nil
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening dispatch CSV %s: %w", csvPath, err)
	}
	shipments, err := parsers.NewShipmentParser().Parse(file)
	file.Close()
	if err != nil {
		return fmt.Errorf("parsing dispatch CSV %s: %w", csvPath, err)
	}
	if len(shipments) == 0 {
		log.Info("Dispatch CSV contained no shipment rows", "path", csvPath)
		return nil
	}
	log.Info("Parsed shipment records", "path", csvPath, "count", len(shipments))

	orderService := services.NewOrderService(cfg)
	orders, err := orderService.FetchOrdersByStatus(ctx, cfg.OrderSearchStatus)
	if err != nil {
		// Without the candidate order list there is nothing to match
		// against, so this failure is fatal to the run.
		return fmt.Errorf("retrieving sales orders with status %q: %w", cfg.OrderSearchStatus, err)
	}

	reconciler := services.NewReconcileService(orderService)
	outcomes := reconciler.Reconcile(ctx, shipments, orders, cfg.OrderUpdateStatus)

	emailService := services.NewEmailService(cfg)
	if err := emailService.SendStatusReport(ctx, outcomes, runID); err != nil {
		return fmt.Errorf("sending status report: %w", err)
	}

	log.Info("Reconciliation run completed", "records", len(outcomes))
	return nil
}
