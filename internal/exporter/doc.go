// Package exporter persists aggregated news tables as parquet files
// and reads them back for merging.
//
// The on-disk row shape is {trading_day: date, cells: map<ticker,
// list<string>>}. Using a parquet MAP for the ticker columns keeps
// absent cells absent (rather than materializing empty lists) and
// preserves list-typed values and the date-typed row key.
package exporter
