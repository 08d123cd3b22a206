package dataprocessing

import (
	"strings"
	"time"

	apperrors "newswire/internal/errors"
)

// instantLayouts lists the accepted instant forms once a trailing "Z"
// marker has been stripped. Fractional seconds are optional in all of
// them. Instants without an explicit offset are treated as UTC.
var instantLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseInstant parses an ISO-8601-like instant string from a news
// archive timestamp record.
func ParseInstant(instant string) (time.Time, error) {
	s := strings.TrimSuffix(strings.TrimSpace(instant), "Z")
	for _, layout := range instantLayouts {
		if strings.Contains(layout, "-07:00") {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.NewTimestampError("unparseable instant", nil).
		WithContext("instant", instant)
}

// TradingDay resolves the trading day an instant belongs to.
//
// The instant is converted into loc; a local time-of-day at or past
// cutoffHour pushes the story to the next calendar day, and a result
// landing on Saturday or Sunday is advanced day-by-day to Monday.
// Market holidays are out of scope; a holiday-aware calendar would be
// a separate provider layered by the caller.
//
// The returned value is a pure date (midnight UTC).
func TradingDay(instant string, loc *time.Location, cutoffHour int) (time.Time, error) {
	utc, err := ParseInstant(instant)
	if err != nil {
		return time.Time{}, err
	}

	local := utc.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	if local.Hour() >= cutoffHour {
		day = day.AddDate(0, 0, 1)
	}

	for day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
		day = day.AddDate(0, 0, 1)
	}

	return day, nil
}
