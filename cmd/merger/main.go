package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"newswire/internal/config"
	"newswire/internal/exporter"
	"newswire/internal/files"
	"newswire/internal/infrastructure"
	"newswire/internal/merge"
	"newswire/pkg/contracts/domain"
)

func main() {
	inDir := flag.String("in", ".", "directory containing per-period .parquet tables")
	outFile := flag.String("out", "combined.parquet", "destination path for the merged table")
	flag.Parse()

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

	ctx := infrastructure.WithRunID(context.Background(), infrastructure.NewRunID())

	parquetFiles, err := files.FindParquetFiles(*inDir)
	if err != nil {
		logger.Error("Failed to read input directory",
			slog.String("dir", *inDir),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(parquetFiles) == 0 {
		logger.WarnContext(ctx, "No parquet files found, nothing to merge",
			slog.String("dir", *inDir))
		return
	}

	var tables []*domain.AggregatedTable
	for _, f := range parquetFiles {
		logger.InfoContext(ctx, "Reading table", slog.String("path", f.Path))
		table, err := exporter.ReadTable(f.Path)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to read table, skipping",
				slog.String("path", f.Path),
				slog.String("error", err.Error()))
			continue
		}
		tables = append(tables, table)
	}

	merged := merge.Merge(tables)

	if err := exporter.WriteTable(*outFile, merged); err != nil {
		logger.ErrorContext(ctx, "Failed to write merged table",
			slog.String("path", *outFile),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Wrote merged table",
		slog.String("path", *outFile),
		slog.Int("rows", merged.Len()),
		slog.Int("source_tables", len(tables)))
}
