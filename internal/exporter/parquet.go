package exporter

import (
	"time"

	"github.com/parquet-go/parquet-go"

	apperrors "newswire/internal/errors"
	"newswire/pkg/contracts/domain"
)

// tableRow is the parquet row shape for one trading day.
type tableRow struct {
	TradingDay time.Time           `parquet:"trading_day,timestamp"`
	Cells      map[string][]string `parquet:"cells"`
}

// OutputName returns the output filename for one processed input file,
// derived from the input's base name.
func OutputName(inputBase string) string {
	return inputBase + "_sentiment_news.parquet"
}

// WriteTable persists an aggregated table to path. Callers are expected
// to skip zero-row tables; writing one anyway produces a valid empty
// parquet file.
func WriteTable(path string, table *domain.AggregatedTable) error {
	domainRows := table.Rows()
	rows := make([]tableRow, 0, len(domainRows))
	for _, r := range domainRows {
		rows = append(rows, tableRow{TradingDay: r.TradingDay, Cells: r.Cells})
	}

	if err := parquet.WriteFile(path, rows); err != nil {
		return apperrors.NewStorageError("failed to write parquet table", err).WithContext("path", path)
	}
	return nil
}

// ReadTable loads a previously written table from path.
func ReadTable(path string) (*domain.AggregatedTable, error) {
	rows, err := parquet.ReadFile[tableRow](path)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read parquet table", err).WithContext("path", path)
	}

	table := domain.NewAggregatedTable()
	for _, r := range rows {
		for ticker, texts := range r.Cells {
			table.AppendList(r.TradingDay, ticker, texts)
		}
	}
	return table, nil
}
