// Package merge combines many per-period aggregated tables into one
// chronologically sorted table.
package merge

import (
	"newswire/pkg/contracts/domain"
)

// Merge unions the rows of the given tables. For a (trading day,
// ticker) combination present in several tables the cell lists are
// concatenated in table-supply order; a combination with no
// contribution stays absent. No text-level dedup happens here; each
// source table already deduplicated its own contents.
func Merge(tables []*domain.AggregatedTable) *domain.AggregatedTable {
	out := domain.NewAggregatedTable()
	for _, table := range tables {
		if table == nil {
			continue
		}
		for _, row := range table.Rows() {
			for ticker, texts := range row.Cells {
				out.AppendList(row.TradingDay, ticker, texts)
			}
		}
	}
	return out
}
