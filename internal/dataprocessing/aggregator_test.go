package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newswire/pkg/contracts/domain"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func TestAggregate_DedupKeepsFirst(t *testing.T) {
	d1 := day(t, "2024-01-02")

	items := []domain.ProcessedItem{
		{TradingDay: d1, Ticker: "AAPL", MaskedHeadline: "h", MaskedBody: "b"},
		{TradingDay: d1, Ticker: "AAPL", MaskedHeadline: "h", MaskedBody: "b"},
	}

	table := Aggregate(items)
	assert.Equal(t, []string{"h b"}, table.Cell(d1, "AAPL"))
}

func TestAggregate_DistinctTextsKeepOrder(t *testing.T) {
	d1 := day(t, "2024-01-02")

	items := []domain.ProcessedItem{
		{TradingDay: d1, Ticker: "AAPL", MaskedHeadline: "first", MaskedBody: "story"},
		{TradingDay: d1, Ticker: "AAPL", MaskedHeadline: "second", MaskedBody: "story"},
	}

	table := Aggregate(items)
	assert.Equal(t, []string{"first story", "second story"}, table.Cell(d1, "AAPL"))
}

func TestAggregate_DedupIsGlobal(t *testing.T) {
	d1 := day(t, "2024-01-02")
	d2 := day(t, "2024-01-03")

	// Identical composite text on a different day and even a different
	// ticker is still dropped; the key spans all buckets.
	items := []domain.ProcessedItem{
		{TradingDay: d1, Ticker: "AAPL", MaskedHeadline: "h", MaskedBody: "b"},
		{TradingDay: d2, Ticker: "AAPL", MaskedHeadline: "h", MaskedBody: "b"},
		{TradingDay: d2, Ticker: "MSFT", MaskedHeadline: "h", MaskedBody: "b"},
	}

	table := Aggregate(items)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, []string{"h b"}, table.Cell(d1, "AAPL"))
	assert.Nil(t, table.Cell(d2, "AAPL"))
	assert.Nil(t, table.Cell(d2, "MSFT"))
}

func TestAggregate_PivotShape(t *testing.T) {
	d1 := day(t, "2024-01-02")
	d2 := day(t, "2024-01-03")

	items := []domain.ProcessedItem{
		{TradingDay: d1, Ticker: "AAPL", MaskedHeadline: "a", MaskedBody: "1"},
		{TradingDay: d1, Ticker: "MSFT", MaskedHeadline: "m", MaskedBody: "1"},
		{TradingDay: d2, Ticker: "AAPL", MaskedHeadline: "a", MaskedBody: "2"},
	}

	table := Aggregate(items)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"AAPL", "MSFT"}, table.Tickers())

	// A (day, ticker) pair with no items is absent, not empty.
	assert.Nil(t, table.Cell(d2, "MSFT"))
}

func TestAggregate_EmptyInput(t *testing.T) {
	table := Aggregate(nil)
	require.NotNil(t, table)
	assert.True(t, table.IsEmpty())
	assert.Equal(t, 0, table.Len())
	assert.Empty(t, table.Tickers())
}
