package gameday

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultBaseURL is the root of the per-day grid resources.
const DefaultBaseURL = "https://gd2.mlb.com/components/game/mlb"

// ISODate is the only accepted date layout.
const ISODate = "2006-01-02"

// ErrInvalidDate is returned when a date argument is not a real YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date format")

// ParseDate parses an ISO calendar date such as "2022-04-07".
// Out-of-range months and days (e.g. "2022-13-40", "2023-02-29") are rejected.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, s)
	}
	return t, nil
}

// GridURL returns the grid.json URL for the given date.
// An empty baseURL falls back to DefaultBaseURL. The date is used as given,
// with no timezone conversion.
func GridURL(baseURL string, date time.Time) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	return fmt.Sprintf("%s/year_%04d/month_%02d/day_%02d/grid.json",
		baseURL, date.Year(), int(date.Month()), date.Day())
}
