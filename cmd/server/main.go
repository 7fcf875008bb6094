// Inkwell - Bookstore Management and Recommendation Backend
// Copyright 2026 Inkwell Labs
// SPDX-License-Identifier: MIT
// https://github.com/inkwell-labs/inkwell

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inkwell-labs/inkwell/internal/api"
	"github.com/inkwell-labs/inkwell/internal/config"
	"github.com/inkwell-labs/inkwell/internal/database"
	"github.com/inkwell-labs/inkwell/internal/importer"
	"github.com/inkwell-labs/inkwell/internal/logging"
	"github.com/inkwell-labs/inkwell/internal/recommend"
	"github.com/inkwell-labs/inkwell/internal/supervisor"
	"github.com/inkwell-labs/inkwell/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Init(logging.Config{Level: "info", Format: "json"})
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting Inkwell with supervisor tree")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// One-shot CSV import before serving, when any input file is configured.
	if cfg.Import.BooksCSV != "" || cfg.Import.CustomersCSV != "" || cfg.Import.SalesCSV != "" {
		runImport(ctx, cfg, db)
	}

	engineCfg := recommend.DefaultConfig()
	if cfg.Recommend.NeighborCount > 0 {
		engineCfg.NeighborCount = cfg.Recommend.NeighborCount
	}
	engine, err := recommend.NewEngine(engineCfg, db, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	handler := api.NewHandler(db, engine, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	slogLogger := logging.NewSlogLogger()
	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddEngineService(services.NewRebuildService(engine, services.RebuildServiceConfig{
		RebuildOnStartup: cfg.Recommend.RebuildOnStartup,
		RebuildInterval:  cfg.Recommend.RebuildInterval,
	}, logging.Logger()))
	logging.Info().Dur("interval", cfg.Recommend.RebuildInterval).Msg("Rebuild service added")

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor closes the channel.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// runImport executes the configured CSV import and logs the outcome. Import
// failures are fatal: serving recommendations against a partially loaded
// catalog would be misleading.
func runImport(ctx context.Context, cfg *config.Config, db *database.DB) {
	imp := importer.New(&cfg.Import, db)
	report, err := imp.Run(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("CSV import failed")
	}
	logging.Info().
		Int("books", report.Books.Inserted).
		Int("customers", report.Customers.Inserted).
		Int("sales", report.Sales.Inserted).
		Int("high_value_sales", report.HighValueSales).
		Dur("duration", report.Duration()).
		Msg("CSV import complete")
}
