package domain

import (
	"time"
)

// ProcessedItem represents one (article, ticker) pairing after filtering
// and masking. Created once per matching ticker and never mutated;
// consumed only by the aggregator.
type ProcessedItem struct {
	TradingDay     time.Time `json:"trading_day" validate:"required"`
	Ticker         string    `json:"ticker" validate:"required"`
	MaskedHeadline string    `json:"masked_headline"`
	MaskedBody     string    `json:"masked_body"`
}

// MaskedText returns the composite text used both as the dedup key and
// as the cell value in the aggregated table: headline and body joined
// by a single space.
func (p ProcessedItem) MaskedText() string {
	return p.MaskedHeadline + " " + p.MaskedBody
}
