package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"newswire/internal/config"
	"newswire/internal/dataprocessing"
	"newswire/internal/exporter"
	"newswire/internal/files"
	"newswire/internal/infrastructure"
)

func main() {
	baseDir := flag.String("dir", "data/news_archive", "base directory containing year subfolders with JSON dump files")
	outDir := flag.String("out", ".", "output directory for parquet tables")
	startStr := flag.String("start", "2018-01-01", "start date (YYYY-MM-DD)")
	endStr := flag.String("end", "2024-12-14", "end date (YYYY-MM-DD)")
	maskEnabled := flag.Bool("mask", false, "apply text masking to headlines and bodies")
	flag.Parse()

	start, err := time.Parse("2006-01-02", *startStr)
	if err != nil {
		slog.Error("Invalid start date", "value", *startStr, "error", err)
		os.Exit(1)
	}
	end, err := time.Parse("2006-01-02", *endStr)
	if err != nil {
		slog.Error("Invalid end date", "value", *endStr, "error", err)
		os.Exit(1)
	}
	if start.After(end) {
		slog.Error("Start date cannot be after end date",
			"start", *startStr, "end", *endStr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	rules := dataprocessing.DefaultRules()
	if cfg.Pipeline.RuleFile != "" {
		overrides, err := config.LoadRuleFile(cfg.Pipeline.RuleFile)
		if err != nil {
			logger.Error("Failed to load rule file",
				slog.String("path", cfg.Pipeline.RuleFile),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		for ticker, tr := range overrides {
			rules[ticker] = tr
		}
	}

	pipeline, err := dataprocessing.NewPipeline(cfg.Pipeline, rules, *maskEnabled, logger)
	if err != nil {
		logger.Error("Failed to build pipeline", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Error("Failed to create output directory",
			slog.String("dir", *outDir),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	logger.InfoContext(ctx, "Starting news archive processing",
		slog.String("base_dir", *baseDir),
		slog.String("output_dir", *outDir),
		slog.String("start", *startStr),
		slog.String("end", *endStr),
		slog.Bool("mask_enabled", *maskEnabled))

	discovery := files.NewDiscovery(*baseDir)

	var processedCount, failedCount int
	for _, ym := range files.MonthRange(start, end) {
		monthFiles, err := discovery.FindMonthFiles(ym.Year, ym.Month)
		if err != nil {
			logger.WarnContext(ctx, "No input files for period, skipping",
				slog.Int("year", ym.Year),
				slog.Int("month", int(ym.Month)),
				slog.String("reason", err.Error()))
			continue
		}

		for _, f := range monthFiles {
			if err := processFile(ctx, logger, pipeline, f, *outDir); err != nil {
				failedCount++
				logger.ErrorContext(ctx, "Failed to process file",
					slog.String("path", f.Path),
					slog.String("error", err.Error()))
				continue
			}
			processedCount++
		}
	}

	logger.InfoContext(ctx, "Processing complete",
		slog.Int("processed_files", processedCount),
		slog.Int("failed_files", failedCount))
}

// processFile runs the pipeline on one input file and writes its table.
// A file yielding zero qualifying articles produces no output file; a
// file failing mid-processing produces no output file either.
func processFile(ctx context.Context, logger *slog.Logger, pipeline *dataprocessing.Pipeline, f files.FileInfo, outDir string) error {
	logger.InfoContext(ctx, "Processing file", slog.String("path", f.Path))

	table, err := pipeline.ProcessFile(ctx, f.Path)
	if err != nil {
		return err
	}

	if table.IsEmpty() {
		logger.InfoContext(ctx, "No qualifying articles, skipping output",
			slog.String("path", f.Path))
		return nil
	}

	outPath := filepath.Join(outDir, exporter.OutputName(f.Name))
	if err := exporter.WriteTable(outPath, table); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Wrote aggregated table",
		slog.String("path", outPath),
		slog.Int("rows", table.Len()))
	return nil
}
