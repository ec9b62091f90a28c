package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"carstock/internal/config"
	"carstock/internal/dataprocessing"
	"carstock/internal/exporter"
	"carstock/internal/infrastructure"
	"carstock/internal/validation"
	"carstock/pkg/contracts"
)

func main() {
	inputPath := flag.String("input", "", "inventory file to ingest (defaults to config input path)")
	outputPath := flag.String("out", "", "report file to write (defaults to config report path)")
	configFile := flag.String("config", "stock-report.yaml", "optional YAML config file")
	verbose := flag.Bool("verbose", false, "echo raw lines, parse outcomes and the per-record listing")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetFullVersionString())
		return
	}

	// Load configuration
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, *inputPath, *outputPath, *verbose)

	// Initialize logging
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	if err := run(ctx, cfg, logger, os.Stdout, *verbose); err != nil {
		logger.ErrorContext(ctx, "Run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// applyFlags lets command-line flags override config and environment.
func applyFlags(cfg *config.Config, inputPath, outputPath string, verbose bool) {
	if inputPath != "" {
		cfg.Input.Path = inputPath
	}
	if outputPath != "" {
		cfg.Report.Path = outputPath
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
}

// run executes one report pass: validate, load, summarize, report.
// A sink write failure is logged and does not fail the run.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, out io.Writer, verbose bool) error {
	logger.InfoContext(ctx, "Starting stock report",
		slog.String("input", cfg.Input.Path),
		slog.String("report", cfg.Report.Path),
		slog.String("mode", cfg.Input.Mode))

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(cfg.Input.Path); err != nil {
		return err
	}
	if err := validator.ValidateOutputDirectory(cfg.Report.Path); err != nil {
		return err
	}

	loader := dataprocessing.NewLoader(logger, dataprocessing.LoadMode(cfg.Input.Mode))
	inventory, stats, err := loader.LoadInventory(cfg.Input.Path)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "Inventory ready",
		slog.Int("records", len(inventory)),
		slog.Int("skipped", stats.Skipped))

	summary := dataprocessing.BuildSummary(inventory)

	writer := exporter.NewReportWriter(logger, cfg.Report.Currency)
	writer.PrintReport(out, inventory, summary, verbose)

	if err := writer.WriteReportFile(cfg.Report.Path, summary); err != nil {
		// Sink failures are reported but never abort the run.
		logger.ErrorContext(ctx, "Failed to write report file",
			slog.String("path", cfg.Report.Path),
			slog.String("error", err.Error()))
	}

	return nil
}
