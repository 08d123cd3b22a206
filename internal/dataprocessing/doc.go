// Package dataprocessing implements the core masking and aggregation
// pipeline for archived news-wire JSON files.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Calendar: converts publication instants into trading days using a
// local-timezone cutoff with weekend forward-shifting
// 2. Masker: applies an ordered chain of regex rewrite stages that
// anonymize dates, times, months, years, company names and products
// 3. Filter: selects qualifying articles and extracts their in-scope
// ticker symbols from subject codes
// 4. Aggregator: deduplicates masked texts and pivots the results into
// a wide (trading day x ticker) table
//
// # Data Flow
//
//	JSON file → Filter → Calendar + Masker → ProcessedItems → Aggregator → AggregatedTable
//
// Pipeline ties the components together for one input file at a time.
// Per-article malformation is skipped silently; unparseable timestamps
// abort the file and surface as typed errors so the driver can isolate
// the failure to that file.
package dataprocessing
