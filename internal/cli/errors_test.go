package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pfrederiksen/mlb-gamedata/internal/gameday"
	"github.com/pfrederiksen/mlb-gamedata/internal/scraper"
)

func TestExitCode(t *testing.T) {
	_, dateErr := gameday.ParseDate("2022-13-40")

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"too few", &ArgumentCountError{Got: 1, Want: 2}, ExitUsage},
		{"flag error", &usageError{err: errors.New("unknown flag: --x")}, ExitUsage},
		{"invalid date", dateErr, ExitInvalidDate},
		{"wrapped fetch error", fmt.Errorf("fetching games: %w", &scraper.FetchError{URL: "http://x", StatusCode: 500}), ExitFetch},
		{"other", errors.New("disk full"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestArgumentCountErrorMessage(t *testing.T) {
	if got := (&ArgumentCountError{Got: 0, Want: 2}).Error(); got != "too few arguments" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&ArgumentCountError{Got: 3, Want: 2}).Error(); got != "too many arguments" {
		t.Errorf("Error() = %q", got)
	}
}
