package domain

import (
	"sort"
	"time"
)

// TradingDayFormat is the canonical date layout used for row keys.
const TradingDayFormat = "2006-01-02"

// TableRow is one row of an aggregated table: a trading day plus a map
// from ticker to that day's list of distinct masked texts. A ticker
// with no stories that day is absent from the map, never an empty list.
type TableRow struct {
	TradingDay time.Time           `json:"trading_day"`
	Cells      map[string][]string `json:"cells"`
}

// AggregatedTable is a wide table keyed by trading day with one column
// per ticker. Rows are unique by trading day; a (day, ticker) cell
// holds an ordered list of masked texts or is absent entirely.
type AggregatedTable struct {
	cells map[string]map[string][]string // day key -> ticker -> texts
}

// NewAggregatedTable returns an empty table with zero rows.
func NewAggregatedTable() *AggregatedTable {
	return &AggregatedTable{cells: make(map[string]map[string][]string)}
}

// Append adds one text to the (day, ticker) cell, creating the row and
// cell as needed.
func (t *AggregatedTable) Append(day time.Time, ticker, text string) {
	t.AppendList(day, ticker, []string{text})
}

// AppendList extends the (day, ticker) cell with texts, preserving
// their order. Appending an empty list leaves the table unchanged, so
// cells that never receive a contribution stay absent.
func (t *AggregatedTable) AppendList(day time.Time, ticker string, texts []string) {
	if len(texts) == 0 {
		return
	}
	key := day.Format(TradingDayFormat)
	row, ok := t.cells[key]
	if !ok {
		row = make(map[string][]string)
		t.cells[key] = row
	}
	row[ticker] = append(row[ticker], texts...)
}

// Cell returns the text list for (day, ticker), or nil when the cell
// is absent.
func (t *AggregatedTable) Cell(day time.Time, ticker string) []string {
	row, ok := t.cells[day.Format(TradingDayFormat)]
	if !ok {
		return nil
	}
	return row[ticker]
}

// Len returns the number of rows (distinct trading days).
func (t *AggregatedTable) Len() int {
	return len(t.cells)
}

// IsEmpty reports whether the table has zero rows.
func (t *AggregatedTable) IsEmpty() bool {
	return len(t.cells) == 0
}

// Days returns the trading days of all rows in ascending order.
func (t *AggregatedTable) Days() []time.Time {
	keys := make([]string, 0, len(t.cells))
	for k := range t.cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	days := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		day, err := time.Parse(TradingDayFormat, k)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	return days
}

// Tickers returns the sorted union of tickers that have at least one
// non-absent cell.
func (t *AggregatedTable) Tickers() []string {
	seen := make(map[string]bool)
	for _, row := range t.cells {
		for ticker := range row {
			seen[ticker] = true
		}
	}
	tickers := make([]string, 0, len(seen))
	for ticker := range seen {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

// Rows materializes the table as rows sorted ascending by trading day.
// Cell maps are copied so callers cannot mutate table internals.
func (t *AggregatedTable) Rows() []TableRow {
	rows := make([]TableRow, 0, len(t.cells))
	for _, day := range t.Days() {
		src := t.cells[day.Format(TradingDayFormat)]
		cells := make(map[string][]string, len(src))
		for ticker, texts := range src {
			cells[ticker] = append([]string(nil), texts...)
		}
		rows = append(rows, TableRow{TradingDay: day, Cells: cells})
	}
	return rows
}
