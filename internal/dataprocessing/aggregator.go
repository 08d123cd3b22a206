package dataprocessing

import (
	"newswire/pkg/contracts/domain"
)

// Aggregate deduplicates processed items and pivots them into a wide
// (trading day x ticker) table.
//
// The dedup key is the composite masked text (headline + " " + body)
// and is GLOBAL: a later item with the same composite text is dropped
// even when it sits on a different trading day or ticker, first
// occurrence wins. This mirrors the upstream drop-duplicates-on-text
// policy and is intentionally not per-bucket.
//
// Surviving items keep input order within each (day, ticker) cell. An
// empty input yields an empty table with zero rows.
func Aggregate(items []domain.ProcessedItem) *domain.AggregatedTable {
	table := domain.NewAggregatedTable()
	seen := make(map[string]struct{}, len(items))

	for _, item := range items {
		text := item.MaskedText()
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		table.Append(item.TradingDay, item.Ticker, text)
	}

	return table
}
