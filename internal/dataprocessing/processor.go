package dataprocessing

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"newswire/internal/config"
	apperrors "newswire/internal/errors"
	"newswire/pkg/contracts/domain"
)

// Pipeline runs the full per-file transformation: decode, filter, mask,
// resolve trading days, aggregate. One Pipeline is built per run and
// holds only read-only state, so intermediate structures from one file
// are dropped before the next begins.
type Pipeline struct {
	logger      *slog.Logger
	masker      *Masker
	universe    Universe
	language    string
	loc         *time.Location
	cutoffHour  int
	maskEnabled bool
}

// NewPipeline builds a pipeline from configuration and compiled rule
// tables. An empty configured universe falls back to DefaultUniverse.
func NewPipeline(cfg config.PipelineConfig, rules map[string]config.TickerRules, maskEnabled bool, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid timezone", err).WithContext("timezone", cfg.Timezone)
	}

	masker, err := NewMasker(rules)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid masking rules", err)
	}

	symbols := cfg.Universe
	if len(symbols) == 0 {
		symbols = DefaultUniverse
	}

	return &Pipeline{
		logger:      logger,
		masker:      masker,
		universe:    NewUniverse(symbols),
		language:    cfg.Language,
		loc:         loc,
		cutoffHour:  cfg.CutoffHour,
		maskEnabled: maskEnabled,
	}, nil
}

// LoadDocument reads and decodes one archived news JSON file.
func (p *Pipeline) LoadDocument(path string) (*domain.NewsDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read input file", err).WithContext("path", path)
	}

	var doc domain.NewsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.NewParsingError("failed to decode news document", err).WithContext("path", path)
	}

	return &doc, nil
}

// ProcessArticles filters and masks every qualifying article, producing
// one item per (article, in-scope ticker). Articles that fail the scope
// checks are skipped silently; an unparseable timestamp aborts the
// whole document so the caller can treat the file as failed.
func (p *Pipeline) ProcessArticles(ctx context.Context, doc *domain.NewsDocument) ([]domain.ProcessedItem, error) {
	var items []domain.ProcessedItem
	skipped := 0

	for i := range doc.Items {
		article := &doc.Items[i]
		if !InScope(article, p.language, p.universe) {
			skipped++
			continue
		}

		tradingDay, err := TradingDay(article.FirstInstant(), p.loc, p.cutoffHour)
		if err != nil {
			return nil, err
		}

		for _, ticker := range SelectTickers(article, p.universe) {
			headline := article.Data.Headline
			body := article.Data.Body
			if p.maskEnabled {
				headline = p.masker.Mask(headline, ticker)
				body = p.masker.Mask(body, ticker)
			}

			items = append(items, domain.ProcessedItem{
				TradingDay:     tradingDay,
				Ticker:         ticker,
				MaskedHeadline: headline,
				MaskedBody:     body,
			})
		}
	}

	p.logger.DebugContext(ctx, "articles processed",
		slog.Int("total", len(doc.Items)),
		slog.Int("skipped", skipped),
		slog.Int("items", len(items)))

	return items, nil
}

// ProcessFile runs the full pipeline on a single input file and returns
// the aggregated table. A zero-row table means the file yielded no
// qualifying articles; callers should then skip output entirely.
func (p *Pipeline) ProcessFile(ctx context.Context, path string) (*domain.AggregatedTable, error) {
	doc, err := p.LoadDocument(path)
	if err != nil {
		return nil, err
	}

	items, err := p.ProcessArticles(ctx, doc)
	if err != nil {
		return nil, err
	}

	table := Aggregate(items)

	p.logger.InfoContext(ctx, "file processed",
		slog.String("path", path),
		slog.Int("articles", len(doc.Items)),
		slog.Int("processed_items", len(items)),
		slog.Int("trading_days", table.Len()))

	return table, nil
}
