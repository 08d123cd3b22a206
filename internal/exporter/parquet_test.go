package exporter

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "newswire/internal/errors"
	"newswire/pkg/contracts/domain"
)

func tradingDay(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.TradingDayFormat, value)
	require.NoError(t, err)
	return d
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "STORY.RTRS.2024-03.REC.JSON.txt_sentiment_news.parquet",
		OutputName("STORY.RTRS.2024-03.REC.JSON.txt"))
}

func TestWriteReadTable_RoundTrip(t *testing.T) {
	table := domain.NewAggregatedTable()
	table.Append(tradingDay(t, "2024-03-04"), "AAPL", "[COMPANY] rises")
	table.Append(tradingDay(t, "2024-03-04"), "AAPL", "[COMPANY] falls")
	table.Append(tradingDay(t, "2024-03-05"), "MSFT", "[COMPANY] ships the [Product 1]")

	path := filepath.Join(t.TempDir(), "out.parquet")
	require.NoError(t, WriteTable(path, table))

	got, err := ReadTable(path)
	require.NoError(t, err)

	require.Len(t, got.Days(), 2)
	for i, day := range got.Days() {
		assert.True(t, day.Equal(table.Days()[i]),
			"day %d: got %v, want %v", i, day, table.Days()[i])
	}
	assert.Equal(t, table.Tickers(), got.Tickers())
	assert.Equal(t, []string{"[COMPANY] rises", "[COMPANY] falls"},
		got.Cell(tradingDay(t, "2024-03-04"), "AAPL"))
	assert.Equal(t, []string{"[COMPANY] ships the [Product 1]"},
		got.Cell(tradingDay(t, "2024-03-05"), "MSFT"))

	// Absent cells stay absent after a round trip.
	assert.Nil(t, got.Cell(tradingDay(t, "2024-03-04"), "MSFT"))
	assert.Nil(t, got.Cell(tradingDay(t, "2024-03-05"), "AAPL"))
}

func TestReadTable_MissingFile(t *testing.T) {
	_, err := ReadTable(filepath.Join(t.TempDir(), "absent.parquet"))
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}

func TestWriteTable_BadPath(t *testing.T) {
	table := domain.NewAggregatedTable()
	table.Append(tradingDay(t, "2024-03-04"), "AAPL", "x")

	err := WriteTable(filepath.Join(t.TempDir(), "no-such-dir", "out.parquet"), table)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeStorage))
}
